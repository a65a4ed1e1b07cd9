package config

import "errors"

// Validation errors returned when a command's configuration view is
// incomplete or invalid.
var (
	// ErrMissingApplication indicates that --app was not provided.
	ErrMissingApplication = errors.New("application name is required (--app)")
	// ErrMissingProfile indicates that --profile was not provided.
	ErrMissingProfile = errors.New("configuration profile is required (--profile)")
	// ErrMissingEnvironment indicates that the environment resolved to an
	// empty value.
	ErrMissingEnvironment = errors.New("environment name is required (--env)")
	// ErrMissingFile indicates that --file was not provided.
	ErrMissingFile = errors.New("file path is required (--file)")
	// ErrInvalidAdapterConfigs indicates invalid AppConfig client settings
	// (for example, an empty client id or agent address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrUnexpectedArguments indicates positional arguments after the flags;
	// no command accepts any.
	ErrUnexpectedArguments = errors.New("unexpected arguments")
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
