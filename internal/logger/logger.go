// Package logger holds the process-wide structured logger used by the store,
// the capture loader and hiictl. The decode cursors never log.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables it.
var L *slog.Logger = discard()

const (
	logPrefix     = "hiictl-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures Init.
type Options struct {
	Enabled bool       // false discards all output
	Writer  io.Writer  // log here instead of a file when set
	LogDir  string     // directory for dated log files. Default: ~/.hiikit/logs
	Level   slog.Level // minimum level
	Text    bool       // text handler instead of JSON
}

// Init replaces L according to opts. The returned closer releases the log
// file, if one was opened; it is never nil.
func Init(opts Options) (io.Closer, error) {
	if !opts.Enabled {
		L = discard()
		return nopCloser{}, nil
	}

	var (
		w      io.Writer = opts.Writer
		closer io.Closer = nopCloser{}
	)
	if w == nil {
		f, err := openLogFile(opts.LogDir)
		if err != nil {
			return nopCloser{}, err
		}
		w, closer = f, f
	}

	hopts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Text {
		L = slog.New(slog.NewTextHandler(w, hopts))
	} else {
		L = slog.New(slog.NewJSONHandler(w, hopts))
	}
	return closer, nil
}

// With returns L with the given attributes attached.
func With(args ...any) *slog.Logger { return L.With(args...) }

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func openLogFile(dir string) (*os.File, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".hiikit", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// best-effort
	cleanOldLogs(dir, time.Now())

	name := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	return os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// cleanOldLogs removes dated log files older than retentionDays.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		// hiictl-2024-01-05.log
		date, err := time.Parse("2006-01-02", strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix))
		if err != nil {
			continue
		}
		if date.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Debug logs at debug level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
