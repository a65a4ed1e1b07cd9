// Package store provides access to local persistence used by the commands.
// Currently that is read-only access to files on the local filesystem.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FileStorage reads whole files from local storage.
type FileStorage interface {
	// ReadFile checks that path exists and returns its full contents.
	// Returns [ErrFileNotFound] (wrapped) without opening anything when the
	// path does not exist, and [ErrReadingFile] (wrapped) for any other I/O
	// failure.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
