// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// maxChunkSize caps a chunk so one chunk in flight stays bounded.
const maxChunkSize = 64 * 1024 * 1024

// validate checks the merged [StructuredConfig]. Group checks run on
// [ClientConfig]; here only the log level is verified.
func (cfg *StructuredConfig) validate() error {
	switch strings.ToLower(cfg.App.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return nil
	default:
		return fmt.Errorf("unknown log level %q", cfg.App.LogLevel)
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	c := cfg.Crypto
	if c.PBKDF2Iterations <= 0 || c.Argon2Iterations == 0 || c.Argon2MemoryMiB == 0 || c.Argon2Threads == 0 {
		return fmt.Errorf("%w: key derivation costs must be positive", ErrInvalidCryptoConfigs)
	}
	if c.ChunkSize <= 0 || c.ChunkSize > maxChunkSize {
		return fmt.Errorf("%w: chunk size %d outside (0, %d]", ErrInvalidCryptoConfigs, c.ChunkSize, maxChunkSize)
	}

	if cfg.Vault.MinPasswordScore < 0 || cfg.Vault.MinPasswordScore > 4 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Workers.TransferConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
