// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Built-in defaults applied before any other source.
const (
	// DefaultEnvironment is the AppConfig environment used when --env is not given.
	DefaultEnvironment = "default"

	// DefaultClientID identifies this client to the one-shot AppConfig API.
	DefaultClientID = "jenkins-pipeline"

	// DefaultAgentAddress is where the AWS AppConfig Agent listens by default.
	DefaultAgentAddress = "http://localhost:2772"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container shared by all
// commands. It is populated by merging built-in defaults, an optional JSON
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Target names what a command reads: a remote configuration document or
	// a local file. Populated from flags and the JSON file only.
	Target Target

	// AWS holds SDK-level settings used to build the AWS client config.
	AWS AWS `envPrefix:"AWS_"`

	// Adapter holds settings for the AppConfig clients.
	Adapter Adapter `envPrefix:"APPCONFIG_"`

	// Log holds the level and output format of the command logger.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Target identifies the document a command operates on.
type Target struct {
	// Application is the AppConfig application name (--app).
	Application string

	// Profile is the AppConfig configuration profile name (--profile).
	Profile string

	// Environment is the AppConfig environment name (--env).
	// Defaults to [DefaultEnvironment].
	Environment string

	// File is the local JSON file path (--file).
	File string
}

// AWS holds the subset of AWS SDK settings the commands expose. Everything
// else (credentials, retries, timeouts) is resolved by the SDK default chain.
type AWS struct {
	// Region is the AWS region of the AppConfig service.
	// Env: AWS_REGION
	Region string `env:"REGION"`

	// Profile selects a named profile from the shared AWS config files.
	// Env: AWS_PROFILE
	Profile string `env:"PROFILE"`
}

// Adapter holds settings for the AppConfig clients.
type Adapter struct {
	// ClientID identifies this client to the one-shot GetConfiguration API.
	// Env: APPCONFIG_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Endpoint overrides the resolved AppConfig service endpoint
	// (e.g. a LocalStack URL). Empty means SDK resolution.
	// Env: APPCONFIG_ENDPOINT_URL
	Endpoint string `env:"ENDPOINT_URL"`

	// AgentAddress is the base URL of the AWS AppConfig Agent.
	// Env: APPCONFIG_AGENT_ADDRESS
	AgentAddress string `env:"AGENT_ADDRESS"`

	// RequestTimeout bounds a single remote call (e.g. "5s"). Zero leaves
	// the SDK or HTTP client default in place.
	// Env: APPCONFIG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "json", "console" or empty for automatic selection.
	// Env: LOG_FORMAT
	Format string `env:"FORMAT"`
}

// FetchConfig is the configuration view of the AppConfig fetch commands.
type FetchConfig struct {
	Target  Target
	AWS     AWS
	Adapter Adapter
	Log     Log
}

// ReaderConfig is the configuration view of the local JSON reader command.
type ReaderConfig struct {
	File string
	Log  Log
}

// GetFetchConfig loads, merges, and validates configuration for the AWS
// AppConfig fetch commands. args are the command-line arguments without the
// program name.
//
// Returns [flag.ErrHelp] (wrapped) when -h or --help was requested.
func GetFetchConfig(args []string) (*FetchConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(parseFetchFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	fetchCfg := newFetchConfig(cfg)
	return fetchCfg, fetchCfg.validate()
}

// GetAgentFetchConfig is [GetFetchConfig] for the command that reads through
// the AWS AppConfig Agent; it additionally requires an agent address.
func GetAgentFetchConfig(args []string) (*FetchConfig, error) {
	fetchCfg, err := GetFetchConfig(args)
	if err != nil {
		return nil, err
	}

	return fetchCfg, fetchCfg.validateAgent()
}

// GetReaderConfig loads, merges, and validates configuration for the local
// JSON reader command.
func GetReaderConfig(args []string) (*ReaderConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(parseReaderFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	readerCfg := &ReaderConfig{
		File: cfg.Target.File,
		Log:  cfg.Log,
	}

	return readerCfg, readerCfg.validate()
}

func newFetchConfig(cfg *StructuredConfig) *FetchConfig {
	return &FetchConfig{
		Target:  cfg.Target,
		AWS:     cfg.AWS,
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
	}
}
