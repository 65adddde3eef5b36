// Package hii reads the binary layout of a UEFI HII package database.
//
// A database export is a run of package lists. Each list carries a GUID and
// a sequence of packages (forms, strings, fonts and others) closed by an End
// package. Strings packages hold UCS-2 string blocks; Forms packages hold IFR
// op-code records.
//
// Every type in this package is a view over a caller-owned buffer. Nothing is
// copied and nothing is valid past the lifetime of that buffer. Cursors are
// forward-only:
//
//	it := hii.NewPackageListIterator(db)
//	for {
//		list, err := it.Next()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		s, ok := list.GetString(0, "en-US")
//		...
//	}
//
// Header lengths are always checked against the enclosing container and a
// mismatch surfaces as ErrTruncated. Packages with unrecognized tags decode
// as UnknownPackage and never stop a traversal.
package hii
