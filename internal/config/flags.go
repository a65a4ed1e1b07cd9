package config

import (
	"flag"
	"fmt"
)

// Usage strings shared by the fetch and reader flag sets.
const (
	usageConfig    = "JSON config file path"
	usageLogLevel  = "Log level (debug, info, warn, error)"
	usageLogFormat = "Log format (json, console); empty selects by terminal"
)

// parseFetchFlags parses the flags of the AppConfig fetch commands.
//
// Flags:
//
//	-app        AWS AppConfig application name (required)
//	-profile    AWS AppConfig configuration profile (required)
//	-env        AWS AppConfig environment name (default "default")
//	-c/-config  JSON file path with configs
//	-log-level  log level
//	-log-format log format
//
// The Go flag package accepts both -name and --name.
func parseFetchFlags(args []string) (*StructuredConfig, error) {
	var target Target
	var log Log
	var jsonConfigPath string

	fs := flag.NewFlagSet("appconfig-fetch", flag.ContinueOnError)
	fs.StringVar(&target.Application, "app", "", "AWS AppConfig application name")
	fs.StringVar(&target.Profile, "profile", "", "AWS AppConfig configuration profile")
	fs.StringVar(&target.Environment, "env", "", fmt.Sprintf("AWS AppConfig environment name (default %q)", DefaultEnvironment))
	registerCommonFlags(fs, &log, &jsonConfigPath)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Target:       target,
		Log:          log,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// parseReaderFlags parses the flags of the local JSON reader command.
//
// Flags:
//
//	-file       path to the JSON file (required)
//	-c/-config  JSON file path with configs
//	-log-level  log level
//	-log-format log format
func parseReaderFlags(args []string) (*StructuredConfig, error) {
	var target Target
	var log Log
	var jsonConfigPath string

	fs := flag.NewFlagSet("json-reader", flag.ContinueOnError)
	fs.StringVar(&target.File, "file", "", "Path to the JSON file")
	registerCommonFlags(fs, &log, &jsonConfigPath)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Target:       target,
		Log:          log,
		JSONFilePath: jsonConfigPath,
	}, nil
}

func registerCommonFlags(fs *flag.FlagSet, log *Log, jsonConfigPath *string) {
	fs.StringVar(jsonConfigPath, "c", "", usageConfig)
	fs.StringVar(jsonConfigPath, "config", "", usageConfig+" (alias)")
	fs.StringVar(&log.Level, "log-level", "", usageLogLevel)
	fs.StringVar(&log.Format, "log-format", "", usageLogFormat)
}

// parseFlagSet parses args into fs and rejects anything left over.
// fs.Parse stops at the first non-flag argument, so leftovers would otherwise
// hide the flags after them.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("error parsing flags: %w: %q", ErrUnexpectedArguments, fs.Args())
	}

	return nil
}
