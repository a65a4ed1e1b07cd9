// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-appconfig-reader/internal/adapter"
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/models"
)

type configurationService struct {
	client adapter.ConfigurationClient

	logger *logger.Logger
}

// NewConfigurationService constructs a [ConfigurationService] that reads
// through client. The same service serves both the AppConfig API client and
// the AppConfig Agent client.
func NewConfigurationService(client adapter.ConfigurationClient, logger *logger.Logger) ConfigurationService {
	return &configurationService{
		client: client,
		logger: logger,
	}
}

// Fetch implements [ConfigurationService]. It issues one GetConfiguration
// call, parses the content as JSON, logs it and returns it. Failures are
// logged and returned; nothing is retried.
func (s *configurationService) Fetch(ctx context.Context, id models.ConfigurationIdentity) (any, error) {
	s.logger.Info().
		Str("application", id.Application).
		Str("profile", id.Profile).
		Str("environment", id.Environment).
		Msg("Retrieving AWS AppConfig")

	cfg, err := s.client.GetConfiguration(ctx, id)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Error().Err(err).Msg("Error retrieving AWS AppConfig")
		return nil, err
	}

	s.logger.Info().Msg("AWS AppConfig content retrieved successfully")
	s.logger.Debug().
		Str("version", cfg.Version).
		Str("content_type", cfg.ContentType).
		Int("content_length", len(cfg.Content)).
		Msg("AWS AppConfig response metadata")

	value, err := decodeJSON(cfg.Content)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error retrieving AWS AppConfig")
		return nil, err
	}

	logContent(s.logger, "AWS AppConfig content:", value)

	return value, nil
}
