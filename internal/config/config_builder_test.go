package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}, Storage: Storage{DB: DB{DSN: "env.db"}}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
}

func TestBuild_FillsDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Crypto: Crypto{ChunkSize: 4096}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.Crypto.ChunkSize)
	assert.Equal(t, 600000, cfg.Crypto.PBKDF2Iterations)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestBuild_RejectsUnknownLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{LogLevel: "loud"}})

	_, err := b.build()
	require.Error(t, err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "https://drive.example.com")
	t.Setenv("CRYPTO_CHUNK_SIZE", "1024")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://drive.example.com", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, 1024, b.configs[0].Crypto.ChunkSize)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("CRYPTO_CHUNK_SIZE", "lots")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("VAULT_MIN_PASSWORD_SCORE=3\n"), 0o600))
	t.Setenv("VAULT_MIN_PASSWORD_SCORE", "")
	require.NoError(t, os.Unsetenv("VAULT_MIN_PASSWORD_SCORE"))

	b := newConfigBuilder().withDotEnv(&StructuredConfig{DotEnvPath: path}).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 3, b.configs[0].Vault.MinPasswordScore)
}

func TestWithDotEnv_MissingExplicitFile(t *testing.T) {
	b := newConfigBuilder().withDotEnv(&StructuredConfig{DotEnvPath: "/nonexistent/.env"})
	assert.Error(t, b.err)
}

func TestWithDotEnv_MissingDefaultFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv(nil)
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	flags := &StructuredConfig{Storage: Storage{DB: DB{DSN: "flag.db"}}}
	b := newConfigBuilder().withFlags(flags)
	require.Len(t, b.configs, 1)
	assert.Same(t, flags, b.configs[0])
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "https://json.example.com"
	payload.Crypto.ChunkSize = 2048
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example.com", b.configs[1].Adapter.HTTPAddress)
	assert.Equal(t, 2048, b.configs[1].Crypto.ChunkSize)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "last-wins.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/first/unused.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins.db", b.configs[2].Storage.DB.DSN)
}
