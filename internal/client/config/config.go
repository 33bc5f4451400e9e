// Package config assembles runtime settings for the amumal client from
// defaults, a .env file, an optional JSON config file, and command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the amumal CLI.
//
// Fields:
//   - BaseURL: root URL of the posting backend REST API.
//   - PageSize: number of posts requested per feed page.
//   - StorageDSN: path of the local sqlite database holding client state.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
type Config struct {
	BaseURL        string
	PageSize       int
	StorageDSN     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.PageSize = 10
	c.StorageDSN = "amumal.db"
	c.RequestTimeout = 12 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (.env included), a JSON file and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
