// Package mmfile maps plist files into memory for decoding.
//
// Callers must invoke the returned release function once they are done with
// the bytes; on platforms without mmap the file is read instead and release
// is a no-op.
package mmfile

import "errors"

// ErrTooLarge is returned for files that do not fit in the address space.
var ErrTooLarge = errors.New("mmfile: file too large to map")

func noop() error { return nil }
