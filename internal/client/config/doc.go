// Package config loads runtime configuration for the legalassist CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-q string   URL of the question/answer endpoint
//	-s string   URL of the corpus sync endpoint
//	-t int      request timeout (seconds)
//	-d string   path of the local sqlite database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "query_endpoint_url": "https://consultant.example/api/ask",
//	  "sync_endpoint_url": "https://consultant.example/api/sync",
//	  "request_timeout": "30s",
//	  "database_path": "legalassist.db"
//	}
//
// Primary API
//
//   - type Config                     — endpoint URLs, timeout and DB path
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
