// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"flag"
	"io"

	"github.com/MKhiriev/go-appconfig-reader/internal/config"
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/models"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Command is the identity of one binary: its logger name, build metadata and
// the writer all logs go to.
type Command struct {
	Name      string
	BuildInfo models.AppBuildInfo
	Stderr    io.Writer
}

// ConfigFailed reports a configuration error and returns the exit code for
// it. A help request exits successfully; usage was already printed by the
// flag set.
func (c Command) ConfigFailed(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}

	c.bootstrapLogger().Error().Err(err).Msg(MsgInvalidConfiguration)
	return ExitUsage
}

// Logger builds the command logger from logCfg and logs the build info.
// When the logger cannot be built the error is reported through the
// bootstrap logger and ok is false.
func (c Command) Logger(logCfg config.Log) (log *logger.Logger, ok bool) {
	log, err := logger.NewLogger(c.Name, c.Stderr, logCfg.Level, logCfg.Format)
	if err != nil {
		c.bootstrapLogger().Error().Err(err).Msg(MsgLoggerInitFailed)
		return nil, false
	}

	log.Debug().
		Str("version", c.BuildInfo.BuildVersion()).
		Str("date", c.BuildInfo.BuildDate()).
		Str("commit", c.BuildInfo.BuildCommit()).
		Msg(MsgBuildInfo)

	return log, true
}

// Finish converts the result of the command's operation into an exit code.
// Services log their own failures, so err is not logged again.
func (c Command) Finish(err error) int {
	if err != nil {
		return ExitFailure
	}

	return ExitOK
}

// bootstrapLogger is used before the configured logger exists. Its settings
// are the defaults, so it cannot fail.
func (c Command) bootstrapLogger() *logger.Logger {
	log, err := logger.NewLogger(c.Name, c.Stderr, config.DefaultLogLevel, logger.FormatAuto)
	if err != nil {
		return logger.Nop()
	}
	return log
}
