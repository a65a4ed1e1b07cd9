// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-appconfig-reader/internal/app"
	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG", "LOG_LEVEL", "LOG_FORMAT",
		"APPCONFIG_CLIENT_ID", "APPCONFIG_ENDPOINT_URL", "APPCONFIG_AGENT_ADDRESS", "APPCONFIG_REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func newAgent(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/demo/environments/default/configurations/web", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"timeout": 30}`))
	})
	mux.HandleFunc("/applications/demo/environments/default/configurations/text", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("timeout=30"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	clearEnv(t)
	srv := newAgent(t)
	t.Setenv("APPCONFIG_AGENT_ADDRESS", srv.URL)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantLogs []string
	}{
		{
			name:     "success",
			args:     []string{"--app", "demo", "--profile", "web"},
			wantCode: app.ExitOK,
			wantLogs: []string{"AWS AppConfig content:", `\"timeout\": 30`, `"logger":"aws_appconfig_agent"`},
		},
		{
			name:     "not found",
			args:     []string{"--app", "demo", "--profile", "missing"},
			wantCode: app.ExitFailure,
			wantLogs: []string{"Error retrieving AWS AppConfig", "not found"},
		},
		{
			name:     "not json",
			args:     []string{"--app", "demo", "--profile", "text"},
			wantCode: app.ExitFailure,
			wantLogs: []string{"decode error"},
		},
		{
			name:     "missing profile",
			args:     []string{"--app", "demo"},
			wantCode: app.ExitUsage,
			wantLogs: []string{app.MsgInvalidConfiguration},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := run(context.Background(), append(tt.args, "--log-format", "json"), &stderr)

			assert.Equal(t, tt.wantCode, code)
			for _, want := range tt.wantLogs {
				assert.Contains(t, stderr.String(), want)
			}
		})
	}
}

func TestRun_AgentUnreachable(t *testing.T) {
	clearEnv(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()
	t.Setenv("APPCONFIG_AGENT_ADDRESS", addr)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--app", "demo", "--profile", "web", "--log-format", "json"}, &stderr)

	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, stderr.String(), "remote error")
}
