package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// HashKey is the HMAC key used by the client to sign request bodies.
	HashKey string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the storage server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the key vault.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCrypto holds the key-derivation parameters and transfer chunk size.
type ClientCrypto struct {
	PBKDF2Iterations int
	Argon2Iterations uint32
	Argon2MemoryMiB  uint32
	Argon2Threads    uint8
	// ChunkSize is the plaintext bytes per transfer chunk.
	ChunkSize int
}

// ClientVault holds local key vault policy.
type ClientVault struct {
	// MinPasswordScore is the minimal zxcvbn score of a vault password.
	MinPasswordScore int
}

// ClientWorkers contains client concurrency settings.
type ClientWorkers struct {
	// TransferConcurrency is the number of items transferred in parallel.
	TransferConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Crypto contains key-derivation costs and the chunk size.
	Crypto ClientCrypto
	// Vault contains the vault password policy.
	Vault ClientVault
	// Workers contains concurrency settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. flags comes from [BindFlags] and may be nil.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a merged [StructuredConfig] onto a [ClientConfig].
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Crypto: ClientCrypto{
			PBKDF2Iterations: cfg.Crypto.PBKDF2Iterations,
			Argon2Iterations: cfg.Crypto.Argon2Iterations,
			Argon2MemoryMiB:  cfg.Crypto.Argon2MemoryMiB,
			Argon2Threads:    cfg.Crypto.Argon2Threads,
			ChunkSize:        cfg.Crypto.ChunkSize,
		},
		Vault:   ClientVault{MinPasswordScore: cfg.Vault.MinPasswordScore},
		Workers: ClientWorkers{TransferConcurrency: cfg.Workers.TransferConcurrency},
	}
}
