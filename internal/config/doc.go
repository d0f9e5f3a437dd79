// Package config loads runtime configuration for the pwcred CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-w int      concurrent key derivations (0 = GOMAXPROCS)
//	-l string   log level (debug|info|warn|error)
//	-f string   log format (text|json)
//	-t int      derivation slot wait timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "5s" or integer nanoseconds:
//
//	{
//	  "workers": 4,
//	  "log_level": "info",
//	  "log_format": "json",
//	  "acquire_timeout": "5s"
//	}
//
// Iterations, key length, digest and salt size are fixed in package cryptox
// and cannot be set here.
package config
