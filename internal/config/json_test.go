package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "hash_key": "secret", "log_level": "debug" },
		"adapter": { "http_address": "https://drive.example.com", "request_timeout": "45s" },
		"storage": { "db": { "dsn": "/tmp/vault.db" } },
		"crypto": {
			"pbkdf2_iterations": 1000,
			"argon2_iterations": 3,
			"argon2_memory_mib": 32,
			"argon2_threads": 2,
			"chunk_size": 65536
		},
		"vault": { "min_password_score": 2 },
		"workers": { "transfer_concurrency": 4 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.HashKey)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://drive.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 1000, cfg.Crypto.PBKDF2Iterations)
	assert.Equal(t, uint32(3), cfg.Crypto.Argon2Iterations)
	assert.Equal(t, uint32(32), cfg.Crypto.Argon2MemoryMiB)
	assert.Equal(t, uint8(2), cfg.Crypto.Argon2Threads)
	assert.Equal(t, 65536, cfg.Crypto.ChunkSize)
	assert.Equal(t, 2, cfg.Vault.MinPasswordScore)
	assert.Equal(t, 4, cfg.Workers.TransferConcurrency)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "not-a-duration"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bool", input: `true`, wantErr: true},
		{name: "garbage string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
