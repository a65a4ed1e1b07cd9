// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-appconfig-reader/internal/config"
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/appconfig"
)

// appConfigAPI is the subset of *appconfig.Client used by this package.
type appConfigAPI interface {
	GetConfiguration(ctx context.Context, params *appconfig.GetConfigurationInput, optFns ...func(*appconfig.Options)) (*appconfig.GetConfigurationOutput, error)
}

type awsConfigurationClient struct {
	api      appConfigAPI
	clientID string
	timeout  time.Duration

	logger *logger.Logger
}

// NewAWSConfigurationClient constructs a [ConfigurationClient] on top of the
// AppConfig GetConfiguration API. Every request is identified by
// adapterCfg.ClientID; adapterCfg.Endpoint, when set, overrides the resolved
// service endpoint.
func NewAWSConfigurationClient(awsCfg aws.Config, adapterCfg config.Adapter, logger *logger.Logger) ConfigurationClient {
	api := appconfig.NewFromConfig(awsCfg, func(o *appconfig.Options) {
		o.BaseEndpoint = baseEndpoint(adapterCfg.Endpoint)
	})

	return newAWSConfigurationClient(api, adapterCfg, logger)
}

func newAWSConfigurationClient(api appConfigAPI, adapterCfg config.Adapter, logger *logger.Logger) *awsConfigurationClient {
	return &awsConfigurationClient{
		api:      api,
		clientID: adapterCfg.ClientID,
		timeout:  adapterCfg.RequestTimeout,
		logger:   logger,
	}
}

// GetConfiguration implements [ConfigurationClient].
func (c *awsConfigurationClient) GetConfiguration(ctx context.Context, id models.ConfigurationIdentity) (models.Configuration, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug().
		Str("client_id", c.clientID).
		Str("application", id.Application).
		Str("profile", id.Profile).
		Str("environment", id.Environment).
		Msg("calling appconfig GetConfiguration")

	//nolint:staticcheck // GetConfiguration is the one-shot API this client exists for.
	out, err := c.api.GetConfiguration(ctx, &appconfig.GetConfigurationInput{
		Application:   aws.String(id.Application),
		Environment:   aws.String(id.Environment),
		Configuration: aws.String(id.Profile),
		ClientId:      aws.String(c.clientID),
	})
	if err != nil {
		return models.Configuration{}, fmt.Errorf("get configuration: %w", mapAWSError(err))
	}

	return models.Configuration{
		Content:     out.Content,
		ContentType: aws.ToString(out.ContentType),
		Version:     aws.ToString(out.ConfigurationVersion),
	}, nil
}
