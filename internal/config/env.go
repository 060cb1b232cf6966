// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields of [StructuredConfig] and its nested sections (Auth, OTP,
// Mailer and so on) are mapped through their `env` and `envPrefix` tags, so
// every knob of the server is reachable as INFLUO-style env configuration
// without flags.
//
// Returns a wrapped error if env.Parse fails, for example when a value can
// not be converted to the target field type.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error parsing env configuration: %w", err)
	}

	return nil
}
