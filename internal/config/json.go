package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pwcred/internal/flagx"
	"github.com/dmitrijs2005/pwcred/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero so a partial file only overrides
// what it names.
type JsonConfig struct {
	Workers        *int            `json:"workers"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
	AcquireTimeout *timex.Duration `json:"acquire_timeout"`
}

// parseJson overlays cfg with values from the file named by -c or -config.
// Without either flag it does nothing. Read or unmarshal errors panic; this
// only runs at startup.
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

	if jc.Workers != nil {
		cfg.Workers = *jc.Workers
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.AcquireTimeout != nil {
		cfg.AcquireTimeout = jc.AcquireTimeout.Duration
	}
}
