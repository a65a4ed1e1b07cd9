// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command json-reader reads a local JSON file and logs its parsed content.
//
// Usage:
//
//	json-reader --file <path>
package main

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-appconfig-reader/internal/app"
	"github.com/MKhiriev/go-appconfig-reader/internal/config"
	"github.com/MKhiriev/go-appconfig-reader/internal/service"
	"github.com/MKhiriev/go-appconfig-reader/internal/store"
	"github.com/MKhiriev/go-appconfig-reader/models"
)

const loggerName = "json_reader"

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

	cfg, err := config.GetReaderConfig(args)
	if err != nil {
		return cmd.ConfigFailed(err)
	}

	log, ok := cmd.Logger(cfg.Log)
	if !ok {
		return app.ExitUsage
	}

	svc := service.NewJSONFileService(store.NewFileStorage(), log)

	_, err = svc.Read(ctx, cfg.File)
	return cmd.Finish(err)
}
