package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates unusable key-derivation parameters or
	// chunk size.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidVaultConfigs indicates a password score outside 0..4.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker settings
	// (for example, zero transfer concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
