// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment with caarlos0/env. Nested sections
// read their variables under the envPrefix of [StructuredConfig]:
//
//	AWS_REGION, AWS_PROFILE                       -> [AWS]
//	APPCONFIG_CLIENT_ID, APPCONFIG_ENDPOINT_URL,
//	APPCONFIG_AGENT_ADDRESS, APPCONFIG_REQUEST_TIMEOUT -> [Adapter]
//	LOG_LEVEL, LOG_FORMAT                         -> [Log]
//	CONFIG                                        -> JSON config file path
//
// Target fields have no env tags; they only come from flags or the JSON file.
// An unparsable value, such as a malformed duration, is returned wrapped.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
