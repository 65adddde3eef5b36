//go:build !unix

// Package mmfile maps capture files read-only so that large database exports
// can be walked without copying them onto the heap.
package mmfile

import "os"

// Map reads the whole file; this platform has no mmap path.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}

func noop() error { return nil }
