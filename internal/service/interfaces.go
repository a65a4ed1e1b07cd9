// Package service implements the read operations of the commands: one-shot
// and session-based AWS AppConfig fetches and the local JSON file read.
//
// Every operation logs what it does through the injected logger and returns
// errors wrapping exactly one of the kinds in errors.go together with the
// underlying cause.
package service

import (
	"context"

	"github.com/MKhiriev/go-appconfig-reader/models"
)

// ConfigurationService fetches a configuration document in a single call and
// requires it to be valid JSON.
type ConfigurationService interface {
	// Fetch returns the parsed JSON document identified by id.
	// Returns [ErrNotFound], [ErrRemote] or [ErrDecode] (wrapped) on failure.
	Fetch(ctx context.Context, id models.ConfigurationIdentity) (any, error)
}

// SessionConfigurationService fetches a configuration document through a
// configuration session and tolerates empty and non-JSON payloads.
type SessionConfigurationService interface {
	// Fetch returns the parsed JSON document identified by id, an empty map
	// for an empty payload, or a map holding the text under
	// [models.RawContentKey] for a non-JSON payload.
	// Returns [ErrNotFound], [ErrRemote] or [ErrDecode] (wrapped) on failure.
	Fetch(ctx context.Context, id models.ConfigurationIdentity) (any, error)
}

// JSONFileService reads JSON documents from local files.
type JSONFileService interface {
	// Read returns the parsed JSON content of the file at path.
	// Returns [ErrNotFound], [ErrRead] or [ErrDecode] (wrapped) on failure.
	Read(ctx context.Context, path string) (any, error)
}
