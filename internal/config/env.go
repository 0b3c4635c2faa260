// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable, e.g. LNXDRIVE_BUS_NAME.
const envPrefix = "LNXDRIVE_"

// parseEnv fills cfg from LNXDRIVE_* variables through the `env` and
// `envPrefix` tags of [StructuredConfig]. Unset variables leave fields zero.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse LNXDRIVE_ environment: %w", err)
	}
	return nil
}
