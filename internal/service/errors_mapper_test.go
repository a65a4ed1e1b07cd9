package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-appconfig-reader/internal/adapter"
	"github.com/MKhiriev/go-appconfig-reader/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "not found", err: fmt.Errorf("get configuration: %w", adapter.ErrNotFound), want: ErrNotFound},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: ErrRemote},
		{name: "throttled", err: adapter.ErrThrottled, want: ErrRemote},
		{name: "transport", err: adapter.ErrTransport, want: ErrRemote},
		{name: "empty token", err: adapter.ErrEmptySessionToken, want: ErrRemote},
		{name: "unclassified", err: errors.New("boom"), want: ErrRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "cause must be preserved")
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}

func TestMapStoreError(t *testing.T) {
	notFound := fmt.Errorf("%w: ./missing.json", store.ErrFileNotFound)
	readErr := fmt.Errorf("%w: permission denied", store.ErrReadingFile)

	assert.ErrorIs(t, mapStoreError(notFound), ErrNotFound)
	assert.ErrorIs(t, mapStoreError(notFound), store.ErrFileNotFound)
	assert.ErrorIs(t, mapStoreError(readErr), ErrRead)
	assert.NotErrorIs(t, mapStoreError(readErr), ErrNotFound)
	assert.NoError(t, mapStoreError(nil))
}
