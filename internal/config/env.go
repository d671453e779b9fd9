// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv exports the variables of a .env file into the process
// environment without overriding variables that are already set. An empty
// path means the default ".env", which may be absent; an explicit path must
// exist.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading dotenv file %q: %w", path, err)
}
