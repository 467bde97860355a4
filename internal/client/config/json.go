package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/legalassist/internal/flagx"
	"github.com/dmitrijs2005/legalassist/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JsonConfig struct {
	QueryEndpointURL string         `json:"query_endpoint_url"`
	SyncEndpointURL  string         `json:"sync_endpoint_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	DatabasePath     string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via
// flagx.JsonConfigFlags). When no path is given, nothing is loaded. Only
// fields present in the file override the config. Panics on read or
// unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.QueryEndpointURL != "" {
		cfg.QueryEndpointURL = jc.QueryEndpointURL
	}
	if jc.SyncEndpointURL != "" {
		cfg.SyncEndpointURL = jc.SyncEndpointURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
