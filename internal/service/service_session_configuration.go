// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-appconfig-reader/internal/adapter"
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/models"
)

type sessionConfigurationService struct {
	client adapter.ConfigurationSessionClient

	logger *logger.Logger
}

// NewSessionConfigurationService constructs a [SessionConfigurationService]
// that reads through client.
func NewSessionConfigurationService(client adapter.ConfigurationSessionClient, logger *logger.Logger) SessionConfigurationService {
	return &sessionConfigurationService{
		client: client,
		logger: logger,
	}
}

// Fetch implements [SessionConfigurationService]. It opens a session, reads
// the latest configuration once and decodes it with [decodeContent]. The
// next-poll token is logged as present or absent and then dropped.
func (s *sessionConfigurationService) Fetch(ctx context.Context, id models.ConfigurationIdentity) (any, error) {
	s.logger.Info().
		Str("application", id.Application).
		Str("profile", id.Profile).
		Str("environment", id.Environment).
		Msg("Retrieving AWS AppConfig through configuration session")

	token, err := s.client.StartConfigurationSession(ctx, id)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Error().Err(err).Msg("Error starting AWS AppConfig configuration session")
		return nil, err
	}

	latest, err := s.client.GetLatestConfiguration(ctx, token)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Error().Err(err).Msg("Error retrieving latest AWS AppConfig configuration")
		return nil, err
	}

	s.logger.Info().Msg("AWS AppConfig content retrieved successfully")
	s.logger.Debug().
		Str("version_label", latest.VersionLabel).
		Str("content_type", latest.ContentType).
		Int("content_length", len(latest.Content)).
		Bool("next_poll_token", latest.NextPollToken != "").
		Dur("next_poll_interval", latest.NextPollInterval).
		Msg("AWS AppConfig session response metadata")

	decoded, err := decodeContent(latest.Content)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error decoding AWS AppConfig content")
		return nil, err
	}

	switch decoded.Kind {
	case models.ContentEmpty:
		s.logger.Warn().Msg("AWS AppConfig returned empty configuration content")
	case models.ContentRaw:
		s.logger.Warn().Msg("AWS AppConfig content is not valid JSON, returning raw content")
	}

	document := decoded.Document()
	logContent(s.logger, "AWS AppConfig content:", document)

	return document, nil
}
