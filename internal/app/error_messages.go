// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the start-up plumbing shared by the go-appconfig-reader
// commands: exit codes, the bootstrap logger, build-info logging and the
// messages written when a command cannot start or fails.
package app

const (
	// MsgInvalidConfiguration is logged when arguments, environment or the
	// JSON config file do not form a valid configuration.
	MsgInvalidConfiguration = "invalid configuration"

	// MsgLoggerInitFailed is logged when the configured logger cannot be
	// built; the bootstrap logger writes it instead.
	MsgLoggerInitFailed = "cannot initialize logger"

	// MsgAWSConfigFailed is logged when the AWS SDK configuration cannot be
	// resolved (region, profile, credentials chain).
	MsgAWSConfigFailed = "cannot load AWS configuration"

	// MsgAdapterInitFailed is logged when an AppConfig client cannot be
	// constructed from the configured settings.
	MsgAdapterInitFailed = "cannot create AppConfig client"

	// MsgBuildInfo is the message of the start-up build-info entry.
	MsgBuildInfo = "build info"
)
