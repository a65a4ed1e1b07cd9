// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the fetch view names a complete configuration
// identity and carries usable client and log settings.
func (cfg *FetchConfig) validate() error {
	if strings.TrimSpace(cfg.Target.Application) == "" {
		return ErrMissingApplication
	}

	if strings.TrimSpace(cfg.Target.Profile) == "" {
		return ErrMissingProfile
	}

	if strings.TrimSpace(cfg.Target.Environment) == "" {
		return ErrMissingEnvironment
	}

	if cfg.Adapter.ClientID == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return cfg.Log.validate()
}

func (cfg *FetchConfig) validateAgent() error {
	if strings.TrimSpace(cfg.Adapter.AgentAddress) == "" {
		return fmt.Errorf("%w: empty agent address", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ReaderConfig) validate() error {
	if strings.TrimSpace(cfg.File) == "" {
		return ErrMissingFile
	}

	return cfg.Log.validate()
}

func (cfg Log) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err != nil {
		return fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Level)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidLogConfigs, cfg.Format)
	}
}
