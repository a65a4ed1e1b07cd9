// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command appconfig-session-fetch retrieves the latest AWS AppConfig
// configuration through an AppConfigData session and logs its content.
// Non-JSON content is returned as raw text, empty content as an empty object.
//
// Usage:
//
//	appconfig-session-fetch --app <application> --profile <profile> [--env <environment>]
package main

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-appconfig-reader/internal/adapter"
	"github.com/MKhiriev/go-appconfig-reader/internal/app"
	"github.com/MKhiriev/go-appconfig-reader/internal/config"
	"github.com/MKhiriev/go-appconfig-reader/internal/service"
	"github.com/MKhiriev/go-appconfig-reader/models"
)

const loggerName = "aws_appconfig_session"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cmd := app.Command{
		Name:      loggerName,
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		Stderr:    stderr,
	}

	cfg, err := config.GetFetchConfig(args)
	if err != nil {
		return cmd.ConfigFailed(err)
	}

	log, ok := cmd.Logger(cfg.Log)
	if !ok {
		return app.ExitUsage
	}

	awsCfg, err := adapter.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgAWSConfigFailed)
		return app.ExitFailure
	}

	client := adapter.NewAWSSessionClient(awsCfg, cfg.Adapter, log)
	svc := service.NewSessionConfigurationService(client, log)

	id := models.ConfigurationIdentity{
		Application: cfg.Target.Application,
		Profile:     cfg.Target.Profile,
		Environment: cfg.Target.Environment,
	}

	_, err = svc.Fetch(ctx, id)
	return cmd.Finish(err)
}
