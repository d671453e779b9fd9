package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		HashKey  string `json:"hash_key"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Crypto struct {
		PBKDF2Iterations int    `json:"pbkdf2_iterations"`
		Argon2Iterations uint32 `json:"argon2_iterations"`
		Argon2MemoryMiB  uint32 `json:"argon2_memory_mib"`
		Argon2Threads    uint8  `json:"argon2_threads"`
		ChunkSize        int    `json:"chunk_size"`
	} `json:"crypto,omitempty"`

	Vault struct {
		MinPasswordScore int `json:"min_password_score"`
	} `json:"vault,omitempty"`

	Workers struct {
		TransferConcurrency int `json:"transfer_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:  jsonCfg.App.HashKey,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Crypto: Crypto{
			PBKDF2Iterations: jsonCfg.Crypto.PBKDF2Iterations,
			Argon2Iterations: jsonCfg.Crypto.Argon2Iterations,
			Argon2MemoryMiB:  jsonCfg.Crypto.Argon2MemoryMiB,
			Argon2Threads:    jsonCfg.Crypto.Argon2Threads,
			ChunkSize:        jsonCfg.Crypto.ChunkSize,
		},
		Vault: Vault{
			MinPasswordScore: jsonCfg.Vault.MinPasswordScore,
		},
		Workers: Workers{
			TransferConcurrency: jsonCfg.Workers.TransferConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
