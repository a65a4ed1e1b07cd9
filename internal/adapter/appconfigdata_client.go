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
	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
)

// appConfigDataAPI is the subset of *appconfigdata.Client used by this package.
type appConfigDataAPI interface {
	StartConfigurationSession(ctx context.Context, params *appconfigdata.StartConfigurationSessionInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.StartConfigurationSessionOutput, error)
	GetLatestConfiguration(ctx context.Context, params *appconfigdata.GetLatestConfigurationInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.GetLatestConfigurationOutput, error)
}

type awsSessionClient struct {
	api     appConfigDataAPI
	timeout time.Duration

	logger *logger.Logger
}

// NewAWSSessionClient constructs a [ConfigurationSessionClient] on top of the
// AppConfigData API. adapterCfg.Endpoint, when set, overrides the resolved
// service endpoint.
func NewAWSSessionClient(awsCfg aws.Config, adapterCfg config.Adapter, logger *logger.Logger) ConfigurationSessionClient {
	api := appconfigdata.NewFromConfig(awsCfg, func(o *appconfigdata.Options) {
		o.BaseEndpoint = baseEndpoint(adapterCfg.Endpoint)
	})

	return newAWSSessionClient(api, adapterCfg, logger)
}

func newAWSSessionClient(api appConfigDataAPI, adapterCfg config.Adapter, logger *logger.Logger) *awsSessionClient {
	return &awsSessionClient{
		api:     api,
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}
}

// StartConfigurationSession implements [ConfigurationSessionClient].
func (c *awsSessionClient) StartConfigurationSession(ctx context.Context, id models.ConfigurationIdentity) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.api.StartConfigurationSession(ctx, &appconfigdata.StartConfigurationSessionInput{
		ApplicationIdentifier:          aws.String(id.Application),
		EnvironmentIdentifier:          aws.String(id.Environment),
		ConfigurationProfileIdentifier: aws.String(id.Profile),
	})
	if err != nil {
		return "", fmt.Errorf("start configuration session: %w", mapAWSError(err))
	}

	token := aws.ToString(out.InitialConfigurationToken)
	if token == "" {
		return "", fmt.Errorf("start configuration session: %w", ErrEmptySessionToken)
	}

	c.logger.Debug().Msg("appconfig configuration session started")
	return token, nil
}

// GetLatestConfiguration implements [ConfigurationSessionClient].
func (c *awsSessionClient) GetLatestConfiguration(ctx context.Context, token string) (models.LatestConfiguration, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.api.GetLatestConfiguration(ctx, &appconfigdata.GetLatestConfigurationInput{
		ConfigurationToken: aws.String(token),
	})
	if err != nil {
		return models.LatestConfiguration{}, fmt.Errorf("get latest configuration: %w", mapAWSError(err))
	}

	return models.LatestConfiguration{
		Content:          out.Configuration,
		ContentType:      aws.ToString(out.ContentType),
		VersionLabel:     aws.ToString(out.VersionLabel),
		NextPollToken:    aws.ToString(out.NextPollConfigurationToken),
		NextPollInterval: time.Duration(out.NextPollIntervalInSeconds) * time.Second,
	}, nil
}
