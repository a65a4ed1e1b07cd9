package service

import "errors"

// Error kinds returned by every service operation. Each returned error wraps
// exactly one of these and the underlying cause.
var (
	// ErrNotFound means the remote configuration or local file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDecode means the content is not valid UTF-8 JSON where JSON is required.
	ErrDecode = errors.New("decode error")

	// ErrRemote means a remote call failed for any reason other than not found.
	ErrRemote = errors.New("remote error")

	// ErrRead means a local file exists but could not be read.
	ErrRead = errors.New("read error")
)
