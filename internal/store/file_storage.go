// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// localFileStorage is the filesystem implementation of [FileStorage].
type localFileStorage struct {
}

// NewFileStorage constructs a [FileStorage] backed by the local filesystem.
func NewFileStorage() FileStorage {
	return &localFileStorage{}
}

// ReadFile implements [FileStorage]. Existence is checked with os.Stat before
// the file is opened, so a missing path never reaches os.ReadFile.
// ctx is checked once before any I/O.
func (l *localFileStorage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadingFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return data, nil
}
