package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/joshuapare/hiikit/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	cborOut bool
	logDir  string
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "hiictl",
	Short: "Inspect and build UEFI HII package database captures",
	Long: `hiictl reads exported UEFI HII package databases (raw, or compressed
with zstd, lz4 or xz) and prints their package lists, string tables and IFR
forms. It can also build package lists from a YAML manifest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if jsonOut && cborOut {
			return errors.New("--json and --cbor are mutually exclusive")
		}
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&cborOut, "cbor", false, "Output in CBOR format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-file", "", "Write JSON logs to dated files in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging() error {
	opts := logger.Options{Level: slog.LevelInfo}
	switch {
	case logDir != "":
		opts.Enabled = true
		opts.LogDir = logDir
		if verbose {
			opts.Level = slog.LevelDebug
		}
	case verbose:
		opts.Enabled = true
		opts.Writer = os.Stderr
		opts.Text = true
		opts.Level = slog.LevelDebug
	}
	c, err := logger.Init(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = c
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

var cborEnc cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	cborEnc, err = opts.EncMode()
	if err != nil {
		panic("hiictl: CBOR encoder initialization failed: " + err.Error())
	}
}

// printCBOR outputs data as deterministic CBOR
func printCBOR(v interface{}) error {
	data, err := cborEnc.Marshal(v)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// structured reports whether a machine-readable format was requested and,
// if so, writes v in it.
func structured(v interface{}) (bool, error) {
	switch {
	case cborOut:
		return true, printCBOR(v)
	case jsonOut:
		return true, printJSON(v)
	}
	return false, nil
}
