// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container. It is populated by
// merging values from a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the server address and transport timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local key vault database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds key-derivation cost parameters and the transfer chunk size.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Vault holds local key vault policy.
	Vault Vault `envPrefix:"VAULT_"`

	// Workers holds settings for concurrent transfers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file. Defaults to ".env" in
	// the working directory; a missing default file is ignored.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign request bodies
	// (HashSHA256 header). Signing is disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the HTTP transport to the storage server.
type Adapter struct {
	// HTTPAddress is the server base URL or host:port.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite vault database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "zkdrive.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Crypto holds cost parameters of the key derivations and the chunk size of
// the transfer engine.
type Crypto struct {
	// PBKDF2Iterations is the PBKDF2-HMAC-SHA256 iteration count.
	// Env: CRYPTO_PBKDF2_ITERATIONS
	PBKDF2Iterations int `env:"PBKDF2_ITERATIONS"`

	// Argon2Iterations is the Argon2id time cost.
	// Env: CRYPTO_ARGON2_ITERATIONS
	Argon2Iterations uint32 `env:"ARGON2_ITERATIONS"`

	// Argon2MemoryMiB is the Argon2id memory cost in MiB.
	// Env: CRYPTO_ARGON2_MEMORY_MIB
	Argon2MemoryMiB uint32 `env:"ARGON2_MEMORY_MIB"`

	// Argon2Threads is the Argon2id parallelism.
	// Env: CRYPTO_ARGON2_THREADS
	Argon2Threads uint8 `env:"ARGON2_THREADS"`

	// ChunkSize is the plaintext size of one transfer chunk in bytes.
	// Env: CRYPTO_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`
}

// Vault holds local key vault policy.
type Vault struct {
	// MinPasswordScore is the minimal zxcvbn score (0-4) accepted for a
	// non-empty vault password. Zero disables the check.
	// Env: VAULT_MIN_PASSWORD_SCORE
	MinPasswordScore int `env:"MIN_PASSWORD_SCORE"`
}

// Workers holds configuration for concurrent transfers.
type Workers struct {
	// TransferConcurrency is the number of items transferred in parallel.
	// Chunks of one item are always sequential.
	// Env: WORKERS_TRANSFER_CONCURRENCY
	TransferConcurrency int `env:"TRANSFER_CONCURRENCY"`
}

// Defaults returns the values used for fields left zero by every source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8090",
			RequestTimeout: time.Minute,
		},
		Storage: Storage{
			DB: DB{DSN: "zkdrive.db"},
		},
		Crypto: Crypto{
			PBKDF2Iterations: 600000,
			Argon2Iterations: 2,
			Argon2MemoryMiB:  64,
			Argon2Threads:    1,
			ChunkSize:        10 * 1024 * 1024,
		},
		Workers: Workers{
			TransferConcurrency: 2,
		},
		DotEnvPath: defaultDotEnvPath,
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. flags is the value produced by [BindFlags]; it may be nil when no
// command line is involved.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(flags).
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
