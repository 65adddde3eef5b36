// Package store models the firmware HII database protocol as a Go interface
// and provides the size-then-fill snapshot helper every caller needs, plus an
// in-memory implementation for tools and tests.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/hii/builder"
)

// Handle identifies a registered package list. The zero Handle is never
// assigned; passed to ExportPackageLists it selects every list.
type Handle uint64

// AllLists selects every registered list in ExportPackageLists.
const AllLists Handle = 0

// Database is the HII database protocol surface this module depends on.
type Database interface {
	// ExportPackageLists copies the selected lists into dst and returns the
	// number of bytes written. When dst is too small it writes nothing and
	// returns *InsufficientSizeError carrying the required size.
	ExportPackageLists(ctx context.Context, handle Handle, dst []byte) (int, error)
	// NewPackageList registers a conformant package list. The store keeps
	// its own copy of list.
	NewPackageList(ctx context.Context, list []byte, owner *Handle) (Handle, error)
	// RemovePackageList unregisters h.
	RemovePackageList(ctx context.Context, h Handle) error
}

var (
	// ErrInvalidHandle is returned for handles the store does not know.
	ErrInvalidHandle = errors.New("store: invalid handle")
	// ErrInvalidPackageList is returned when a registration fails to decode
	// or is not terminated by an End package.
	ErrInvalidPackageList = errors.New("store: invalid package list")
	// ErrInconsistentSnapshotSize is returned when the database grew between
	// the size query and the fill.
	ErrInconsistentSnapshotSize = errors.New("store: snapshot size changed between calls")
)

// InsufficientSizeError reports the buffer size ExportPackageLists needs.
type InsufficientSizeError struct {
	Required int
}

func (e *InsufficientSizeError) Error() string {
	return fmt.Sprintf("store: buffer too small, %d bytes required", e.Required)
}

// Error wraps a failure reported by a Database.
type Error struct {
	Op  string // "export", "register" or "remove"
	Err error
}

func (e *Error) Error() string { return "store: " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// Snapshot exports the selected lists using the two-call protocol: a size
// query with an empty buffer, then a fill into a buffer of exactly the
// reported size. A second size complaint is ErrInconsistentSnapshotSize;
// Snapshot does not retry.
func Snapshot(ctx context.Context, db Database, handle Handle) ([]byte, error) {
	_, err := db.ExportPackageLists(ctx, handle, nil)
	if err == nil {
		// Nothing registered.
		return []byte{}, nil
	}
	var short *InsufficientSizeError
	if !errors.As(err, &short) {
		return nil, wrap("export", err)
	}

	buf := make([]byte, short.Required)
	n, err := db.ExportPackageLists(ctx, handle, buf)
	if errors.As(err, &short) {
		return nil, fmt.Errorf("%w: reported %d bytes, then %d",
			ErrInconsistentSnapshotSize, len(buf), short.Required)
	}
	if err != nil {
		return nil, wrap("export", err)
	}
	return buf[:n], nil
}

// Register builds a package list from packages and registers it. packages
// must already end with an End package.
func Register(ctx context.Context, db Database, guid hii.GUID, owner *Handle, packages ...[]byte) (Handle, error) {
	list, err := builder.PackageList(guid, packages...)
	if err != nil {
		return 0, err
	}
	h, err := db.NewPackageList(ctx, list, owner)
	if err != nil {
		return 0, wrap("register", err)
	}
	return h, nil
}

// Unregister removes h from db.
func Unregister(ctx context.Context, db Database, h Handle) error {
	if err := db.RemovePackageList(ctx, h); err != nil {
		return wrap("remove", err)
	}
	return nil
}

// FindPackageList snapshots the whole database and returns the first list
// with the given GUID. The list is a view over a fresh buffer owned by the
// caller.
func FindPackageList(ctx context.Context, db Database, guid hii.GUID) (hii.PackageList, error) {
	snap, err := Snapshot(ctx, db, AllLists)
	if err != nil {
		return hii.PackageList{}, err
	}
	return hii.FindPackageList(snap, guid)
}

// GetPackageList snapshots a single registered list.
func GetPackageList(ctx context.Context, db Database, h Handle) (hii.PackageList, error) {
	if h == AllLists {
		return hii.PackageList{}, ErrInvalidHandle
	}
	snap, err := Snapshot(ctx, db, h)
	if err != nil {
		return hii.PackageList{}, err
	}
	return hii.ParsePackageList(snap)
}
