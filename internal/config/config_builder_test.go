package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the builder reads so tests do not depend on
// the developer's shell. Empty values are ignored by caarlos0/env.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG",
		"AWS_REGION", "AWS_PROFILE",
		"APPCONFIG_CLIENT_ID", "APPCONFIG_ENDPOINT_URL", "APPCONFIG_AGENT_ADDRESS", "APPCONFIG_REQUEST_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func staticFlags(cfg *StructuredConfig) func([]string) (*StructuredConfig, error) {
	return func([]string) (*StructuredConfig, error) {
		return cfg, nil
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()

	require.NotNil(t, b)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.env)
	assert.Nil(t, b.flags)
	assert.Nil(t, b.json)
	assert.NoError(t, b.err)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_PriorityOrder(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		Target:  Target{Application: "from-json", Profile: "json-profile"},
		Adapter: Adapter{ClientID: "json-client", RequestTimeout: time.Second},
	}
	b.env = &StructuredConfig{
		Adapter: Adapter{ClientID: "env-client"},
		Log:     Log{Level: "warn"},
	}
	b.flags = &StructuredConfig{
		Target: Target{Application: "from-flags"},
		Log:    Log{Level: "debug"},
	}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Target.Application)
	assert.Equal(t, "json-profile", cfg.Target.Profile)
	assert.Equal(t, DefaultEnvironment, cfg.Target.Environment)
	assert.Equal(t, "env-client", cfg.Adapter.ClientID)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultAgentAddress, cfg.Adapter.AgentAddress)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultEnvironment, cfg.Target.Environment)
	assert.Equal(t, DefaultClientID, cfg.Adapter.ClientID)
	assert.Equal(t, DefaultAgentAddress, cfg.Adapter.AgentAddress)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("APPCONFIG_CLIENT_ID", "from-env")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.NotNil(t, b.env)
	assert.Equal(t, "from-env", b.env.Adapter.ClientID)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("APPCONFIG_REQUEST_TIMEOUT", "not-a-duration")

	b := newConfigBuilder().withEnv()

	require.Error(t, b.err)
	assert.Nil(t, b.env)
}

func TestWithFlags_SetsErrorOnParseFailure(t *testing.T) {
	b := newConfigBuilder().withFlags(parseFetchFlags, []string{"--unknown"})

	require.Error(t, b.err)
	assert.Nil(t, b.flags)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	clearEnv(t)

	b := newConfigBuilder().withEnv().withFlags(staticFlags(&StructuredConfig{}), nil).withJSON()

	require.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_LoadsFromEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG", writeTempFile(t, `{"aws": {"region": "ap-south-1"}}`))

	b := newConfigBuilder().withEnv().withFlags(staticFlags(&StructuredConfig{}), nil).withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "ap-south-1", b.json.AWS.Region)
}

func TestWithJSON_FlagPathWinsOverEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG", writeTempFile(t, `{"aws": {"region": "from-env-file"}}`))
	flagPath := writeTempFile(t, `{"aws": {"region": "from-flag-file"}}`)

	b := newConfigBuilder().
		withEnv().
		withFlags(staticFlags(&StructuredConfig{JSONFilePath: flagPath}), nil).
		withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "from-flag-file", b.json.AWS.Region)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: "/definitely/not/here.json"}

	b.withJSON()

	require.Error(t, b.err)
	assert.Nil(t, b.json)
}
