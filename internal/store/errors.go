package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFileNotFound is returned when the requested path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrReadingFile is returned when the path exists but cannot be stat'ed,
	// opened or read (permissions, directory instead of file, I/O error).
	ErrReadingFile = errors.New("error reading file")
)
