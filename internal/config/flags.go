package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they populate once fs is parsed. The CLI owns parsing; the returned value
// is later handed to [GetClientConfig].
//
// Flags:
//
//	-s/--server      storage server base URL or host:port
//	-d/--db          local vault database path
//	-c/--config      json file path with configs
//	--env-file       .env file path
//	--hash-key       request signing key
//	--log-level      log level
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--chunk-size     plaintext chunk size in bytes
//	--concurrency    number of items transferred in parallel
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "server", "s", "", "Storage server address")
	fs.StringVarP(&cfg.Storage.DB.DSN, "db", "d", "", "Local vault database path")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.DotEnvPath, "env-file", "", ".env file path")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Request signing key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Crypto.ChunkSize, "chunk-size", 0, "Plaintext chunk size in bytes")
	fs.IntVar(&cfg.Workers.TransferConcurrency, "concurrency", 0, "Number of items transferred in parallel")

	return cfg
}
