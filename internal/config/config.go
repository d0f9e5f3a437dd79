package config

import "time"

// Config holds runtime settings for the pwcred CLI.
//
// Fields:
//   - Workers: maximum number of concurrent key derivations (0 = GOMAXPROCS).
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: text or json.
//   - AcquireTimeout: how long a command waits for a free derivation slot.
//
// The key-derivation parameters are not configurable; see package cryptox.
type Config struct {
	Workers        int
	LogLevel       string
	LogFormat      string
	AcquireTimeout time.Duration
}

// Flags lists every flag owned by the config loader, including the JSON file
// flags. The CLI receives the remaining arguments.
var Flags = []string{"-c", "-config", "-w", "-l", "-f", "-t"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Workers = 0
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.AcquireTimeout = 30 * time.Second
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
