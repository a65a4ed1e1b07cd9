// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command appconfig-agent-fetch retrieves one configuration document from a
// local AWS AppConfig Agent over HTTP and logs its parsed JSON content.
//
// Usage:
//
//	appconfig-agent-fetch --app <application> --profile <profile> [--env <environment>]
//
// The agent address comes from APPCONFIG_AGENT_ADDRESS or the JSON config
// file and defaults to http://localhost:2772.
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

const loggerName = "aws_appconfig_agent"

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

	cfg, err := config.GetAgentFetchConfig(args)
	if err != nil {
		return cmd.ConfigFailed(err)
	}

	log, ok := cmd.Logger(cfg.Log)
	if !ok {
		return app.ExitUsage
	}

	client, err := adapter.NewAgentConfigurationClient(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgAdapterInitFailed)
		return app.ExitUsage
	}

	svc := service.NewConfigurationService(client, log)

	id := models.ConfigurationIdentity{
		Application: cfg.Target.Application,
		Profile:     cfg.Target.Profile,
		Environment: cfg.Target.Environment,
	}

	_, err = svc.Fetch(ctx, id)
	return cmd.Finish(err)
}
