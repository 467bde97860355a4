package config

import "time"

// Config holds runtime settings for the legalassist CLI.
//
// Fields:
//   - QueryEndpointURL: URL of the remote question/answer endpoint.
//   - SyncEndpointURL: URL of the remote corpus sync endpoint.
//   - RequestTimeout: bound on any single network call; expiry is treated
//     as a transport failure.
//   - DatabasePath: path of the local sqlite database.
type Config struct {
	QueryEndpointURL string
	SyncEndpointURL  string
	RequestTimeout   time.Duration
	DatabasePath     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.QueryEndpointURL = "https://functions.poehali.dev/34de8437-f9f6-4a45-a537-2b1cb7ea60ca"
	c.SyncEndpointURL = "https://functions.poehali.dev/fe807173-efe8-497d-a271-8a31d7ea7265"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "legalassist.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
