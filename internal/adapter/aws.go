package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-appconfig-reader/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// LoadAWSConfig resolves the AWS SDK configuration through the default
// credential and region chain, narrowed by the region and shared-config
// profile in cfg when they are set.
func LoadAWSConfig(ctx context.Context, cfg config.AWS) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}

	return awsCfg, nil
}

// baseEndpoint returns the endpoint override as the SDK expects it.
func baseEndpoint(endpoint string) *string {
	if endpoint == "" {
		return nil
	}

	return aws.String(endpoint)
}

// withTimeout bounds ctx by d; a non-positive d only adds cancellation.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}
