// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-appconfig-reader/internal/config"
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/internal/utils"
	"github.com/MKhiriev/go-appconfig-reader/models"
)

const agentConfigurationPath = "/applications/{application}/environments/{environment}/configurations/{profile}"

type agentConfigurationClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewAgentConfigurationClient constructs a [ConfigurationClient] that reads
// through the AWS AppConfig Agent HTTP endpoint at adapterCfg.AgentAddress.
// The agent holds its own AppConfig session, so no client id is sent.
//
// Returns an error if adapterCfg.AgentAddress is empty or cannot be parsed as
// a valid URL.
func NewAgentConfigurationClient(adapterCfg config.Adapter, logger *logger.Logger) (ConfigurationClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.AgentAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid agent address: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &agentConfigurationClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetConfiguration implements [ConfigurationClient]. It GETs
// /applications/{application}/environments/{environment}/configurations/{profile}
// from the agent and returns the body as the configuration content.
func (a *agentConfigurationClient) GetConfiguration(ctx context.Context, id models.ConfigurationIdentity) (models.Configuration, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"application": id.Application,
			"environment": id.Environment,
			"profile":     id.Profile,
		}).
		Get(agentConfigurationPath)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("agent request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Configuration{}, fmt.Errorf("agent request: %w", err)
	}

	return models.Configuration{
		Content:     resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
		Version:     resp.Header().Get("Configuration-Version"),
	}, nil
}
