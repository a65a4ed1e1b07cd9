// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultEnvironment is the environment name used when none is given on the
// command line.
const DefaultEnvironment = "default"

// ConfigurationIdentity names one configuration document managed by AWS
// AppConfig. All three parts are required by the remote service; only
// Environment has a default.
type ConfigurationIdentity struct {
	// Application is the AppConfig application name or identifier.
	Application string `json:"application"`

	// Profile is the configuration profile name or identifier.
	Profile string `json:"profile"`

	// Environment is the deployment environment name or identifier.
	Environment string `json:"environment"`
}

// Configuration is the payload returned by a one-shot configuration read.
type Configuration struct {
	// Content holds the raw document bytes exactly as served.
	Content []byte

	// ContentType is the MIME type reported by the service, if any.
	ContentType string

	// Version is the configuration version reported by the service, if any.
	Version string
}

// LatestConfiguration is the payload returned by a session-based
// configuration read.
type LatestConfiguration struct {
	// Content holds the raw document bytes. An empty slice means the service
	// has nothing newer than what the session token already covers.
	Content []byte

	// ContentType is the MIME type reported by the service, if any.
	ContentType string

	// VersionLabel is the user-defined label of the deployed version, if any.
	VersionLabel string

	// NextPollToken is the opaque token for the next GetLatestConfiguration
	// call on the same session.
	NextPollToken string

	// NextPollInterval is how long the service asks clients to wait before
	// polling with NextPollToken.
	NextPollInterval time.Duration
}
