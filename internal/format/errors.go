package format

import "errors"

var (
	// ErrTruncated indicates a header claimed more bytes than remain in the
	// enclosing buffer. It is never clamped; callers see it verbatim.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrLengthOverflow indicates a length does not fit its wire field (24 bits
	// for packages, 32 bits for package lists).
	ErrLengthOverflow = errors.New("format: length overflow")
	// ErrUnrecognizedType indicates a package type tag outside the defined set.
	// It is a soft condition: traversals skip the package and continue.
	ErrUnrecognizedType = errors.New("format: unrecognized package type")
	// ErrNotFound indicates a requested package list or string was missing.
	ErrNotFound = errors.New("format: not found")
	// ErrInvalidString indicates text that cannot be stored as a UCS-2 string.
	ErrInvalidString = errors.New("format: invalid UCS-2 string")
	// ErrInvalidGUID indicates a GUID string that could not be parsed.
	ErrInvalidGUID = errors.New("format: invalid GUID")
)
