// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for reading
// configuration documents from AWS AppConfig.
//
// Two abstractions mirror the two generations of the AppConfig API:
// [ConfigurationClient] is a single-call read (the AppConfig
// GetConfiguration API, or the AppConfig Agent's local HTTP endpoint) and
// [ConfigurationSessionClient] is the session-token based read of the
// AppConfigData API.
//
// Error values defined in errors.go are mapped from AWS API error codes and
// HTTP status codes so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for a missing
// application, profile or environment).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-appconfig-reader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfigurationClient reads a configuration document in one call.
type ConfigurationClient interface {
	// GetConfiguration returns the full content of the configuration
	// identified by id. Returns an error wrapping one of the sentinel values
	// of this package if the call fails.
	GetConfiguration(ctx context.Context, id models.ConfigurationIdentity) (models.Configuration, error)
}

// ConfigurationSessionClient reads a configuration document through a
// configuration session.
type ConfigurationSessionClient interface {
	// StartConfigurationSession opens a session for id and returns the
	// initial configuration token. Returns [ErrEmptySessionToken] (wrapped)
	// if the service answers without a token.
	StartConfigurationSession(ctx context.Context, id models.ConfigurationIdentity) (string, error)

	// GetLatestConfiguration fetches the latest configuration for the
	// session behind token. The result carries the token for the next poll.
	GetLatestConfiguration(ctx context.Context, token string) (models.LatestConfiguration, error)
}
