package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Target struct {
		Application string `json:"app"`
		Profile     string `json:"profile"`
		Environment string `json:"env"`
		File        string `json:"file"`
	} `json:"target,omitempty"`

	AWS struct {
		Region  string `json:"region"`
		Profile string `json:"profile"`
	} `json:"aws,omitempty"`

	AppConfig struct {
		ClientID       string   `json:"client_id"`
		Endpoint       string   `json:"endpoint_url"`
		AgentAddress   string   `json:"agent_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"appconfig,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Target: Target{
			Application: jsonCfg.Target.Application,
			Profile:     jsonCfg.Target.Profile,
			Environment: jsonCfg.Target.Environment,
			File:        jsonCfg.Target.File,
		},
		AWS: AWS{
			Region:  jsonCfg.AWS.Region,
			Profile: jsonCfg.AWS.Profile,
		},
		Adapter: Adapter{
			ClientID:       jsonCfg.AppConfig.ClientID,
			Endpoint:       jsonCfg.AppConfig.Endpoint,
			AgentAddress:   jsonCfg.AppConfig.AgentAddress,
			RequestTimeout: time.Duration(jsonCfg.AppConfig.RequestTimeout),
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
