// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-appconfig-reader/internal/adapter"
	"github.com/MKhiriev/go-appconfig-reader/internal/store"
)

// mapAdapterError translates an adapter error into a service error kind,
// keeping the adapter error as the cause.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrRemote, err)
}

// mapStoreError translates a store error into a service error kind,
// keeping the store error as the cause.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrFileNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrRead, err)
}
