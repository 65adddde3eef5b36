package hii

import "github.com/joshuapare/hiikit/internal/format"

// Sentinel errors shared with the wire codec. Callers match them with
// errors.Is. Every decode error from this package wraps one of them.
var (
	// ErrTruncated reports a header that claims more bytes than its parent
	// container holds.
	ErrTruncated = format.ErrTruncated
	// ErrUnrecognizedType reports a package tag outside the defined set.
	// Traversals treat it as "skip this package", never as fatal.
	ErrUnrecognizedType = format.ErrUnrecognizedType
	// ErrNotFound reports a missing package list.
	ErrNotFound = format.ErrNotFound
	// ErrLengthOverflow reports a built package or list too large for its
	// length field.
	ErrLengthOverflow = format.ErrLengthOverflow
	// ErrInvalidString reports text that cannot be stored as UCS-2.
	ErrInvalidString = format.ErrInvalidString
	// ErrInvalidGUID reports a malformed GUID string.
	ErrInvalidGUID = format.ErrInvalidGUID
)
