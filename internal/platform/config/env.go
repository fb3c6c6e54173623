// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every Codexly environment variable. Struct tags omit
// it; ParseEnv prepends it when resolving variables.
const EnvPrefix = "CODEXLY_"

// ParseEnv loads CODEXLY_-prefixed environment variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
