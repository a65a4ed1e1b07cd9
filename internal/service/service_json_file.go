// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/internal/store"
)

type jsonFileService struct {
	storage store.FileStorage

	logger *logger.Logger
}

// NewJSONFileService constructs a [JSONFileService] reading from storage.
func NewJSONFileService(storage store.FileStorage, logger *logger.Logger) JSONFileService {
	return &jsonFileService{
		storage: storage,
		logger:  logger,
	}
}

// Read implements [JSONFileService]. A missing file, an unreadable file and
// invalid JSON are each logged with their own message before the error is
// returned.
func (s *jsonFileService) Read(ctx context.Context, path string) (any, error) {
	s.logger.Info().Str("path", path).Msg("Reading JSON file")

	data, err := s.storage.ReadFile(ctx, path)
	if err != nil {
		err = mapStoreError(err)
		if errors.Is(err, ErrNotFound) {
			s.logger.Error().Err(err).Str("path", path).Msg("File not found")
		} else {
			s.logger.Error().Err(err).Str("path", path).Msg("Error reading JSON file")
		}
		return nil, err
	}

	value, err := decodeJSON(data)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Invalid JSON format")
		return nil, err
	}

	logContent(s.logger, "JSON content:", value)

	return value, nil
}
