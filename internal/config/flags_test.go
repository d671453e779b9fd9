package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-s", "https://drive.example.com",
		"--db", "/tmp/vault.db",
		"-c", "/etc/zkdrive.json",
		"--env-file", "/etc/zkdrive.env",
		"--hash-key", "k",
		"--log-level", "warn",
		"--request-timeout", "15s",
		"--chunk-size", "4096",
		"--concurrency", "3",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://drive.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/zkdrive.json", cfg.JSONFilePath)
	assert.Equal(t, "/etc/zkdrive.env", cfg.DotEnvPath)
	assert.Equal(t, "k", cfg.App.HashKey)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4096, cfg.Crypto.ChunkSize)
	assert.Equal(t, 3, cfg.Workers.TransferConcurrency)
}

func TestBindFlags_NoFlagsLeavesZeroConfig(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--request-timeout", "later"}))
}
