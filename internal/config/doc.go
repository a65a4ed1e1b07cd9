// Package config provides configuration loading, merging, and validation
// facilities for the go-appconfig-reader commands.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The entry points are [GetFetchConfig] and [GetAgentFetchConfig] for the
// AppConfig fetch commands and [GetReaderConfig] for the local JSON reader.
package config
