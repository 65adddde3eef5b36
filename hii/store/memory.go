package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/internal/logger"
)

// Digest is the BLAKE3-256 hash of a package list's bytes.
type Digest [32]byte

// DigestOf hashes a package list.
func DigestOf(list []byte) Digest { return blake3.Sum256(list) }

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Memory is an in-memory Database. Registrations are validated with the hii
// decoder, handles increase monotonically from 1, and exports return lists in
// registration order. A GUID may be registered only once.
type Memory struct {
	mu       sync.Mutex
	next     Handle
	lists    []*entry // registration order
	byHandle map[Handle]*entry
	byGUID   map[hii.GUID]Handle
	byDigest map[Digest]Handle
}

type entry struct {
	handle Handle
	owner  Handle
	guid   hii.GUID
	digest Digest
	data   []byte
}

// Info describes one registered list.
type Info struct {
	Handle Handle
	Owner  Handle
	GUID   hii.GUID
	Digest Digest
	Size   int
}

// log resolves the global logger on every call so stores built before
// logger.Init still log.
func (m *Memory) log() *slog.Logger { return logger.With("component", "store") }

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		next:     1,
		byHandle: make(map[Handle]*entry),
		byGUID:   make(map[hii.GUID]Handle),
		byDigest: make(map[Digest]Handle),
	}
}

// NewMemoryFromSnapshot registers every list of an exported database, in
// order, into a new store.
func NewMemoryFromSnapshot(ctx context.Context, db []byte) (*Memory, error) {
	lists, err := hii.ParseDatabase(db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPackageList, err)
	}
	m := NewMemory()
	for _, l := range lists {
		if _, err := m.NewPackageList(ctx, l.Bytes(), nil); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewPackageList implements Database.
func (m *Memory) NewPackageList(ctx context.Context, list []byte, owner *Handle) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l, err := hii.ParsePackageList(list)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPackageList, err)
	}
	if l.Len() != len(list) {
		return 0, fmt.Errorf("%w: %d trailing bytes after list", ErrInvalidPackageList, len(list)-l.Len())
	}
	if err := l.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPackageList, err)
	}

	e := &entry{
		guid:   l.GUID(),
		digest: DigestOf(list),
		data:   append([]byte(nil), list...),
	}
	if owner != nil {
		e.owner = *owner
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if h, dup := m.byGUID[e.guid]; dup {
		m.log().Warn("duplicate package list guid", "guid", e.guid.String(), "handle", h)
		return 0, fmt.Errorf("%w: guid %s already registered as handle %d", ErrInvalidPackageList, e.guid, h)
	}
	e.handle = m.next
	m.next++
	m.lists = append(m.lists, e)
	m.byHandle[e.handle] = e
	m.byGUID[e.guid] = e.handle
	m.byDigest[e.digest] = e.handle

	m.log().Debug("registered package list",
		"handle", e.handle, "guid", e.guid.String(), "size", len(e.data), "digest", e.digest.String())
	return e.handle, nil
}

// RemovePackageList implements Database.
func (m *Memory) RemovePackageList(ctx context.Context, h Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.byHandle[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	delete(m.byHandle, h)
	delete(m.byGUID, e.guid)
	if m.byDigest[e.digest] == h {
		delete(m.byDigest, e.digest)
	}
	for i, x := range m.lists {
		if x == e {
			m.lists = append(m.lists[:i], m.lists[i+1:]...)
			break
		}
	}

	m.log().Debug("removed package list", "handle", h, "guid", e.guid.String())
	return nil
}

// ExportPackageLists implements Database.
func (m *Memory) ExportPackageLists(ctx context.Context, handle Handle, dst []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sel := m.lists
	if handle != AllLists {
		e, ok := m.byHandle[handle]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrInvalidHandle, handle)
		}
		sel = []*entry{e}
	}

	required := 0
	for _, e := range sel {
		required += len(e.data)
	}
	if len(dst) < required {
		return 0, &InsufficientSizeError{Required: required}
	}
	n := 0
	for _, e := range sel {
		n += copy(dst[n:], e.data)
	}
	return n, nil
}

// Handles returns the registered handles in registration order.
func (m *Memory) Handles() []Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Handle, len(m.lists))
	for i, e := range m.lists {
		out[i] = e.handle
	}
	return out
}

// Stat describes a registered list.
func (m *Memory) Stat(h Handle) (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byHandle[h]
	if !ok {
		return Info{}, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	return Info{Handle: e.handle, Owner: e.owner, GUID: e.guid, Digest: e.digest, Size: len(e.data)}, nil
}

// LookupDigest returns the handle of the list whose bytes hash to d.
func (m *Memory) LookupDigest(d Digest) (Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.byDigest[d]
	return h, ok
}

// LookupGUID returns the handle registered for guid.
func (m *Memory) LookupGUID(guid hii.GUID) (Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.byGUID[guid]
	return h, ok
}
