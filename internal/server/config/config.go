// Package config handles configuration for the HTTP API server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the jobapp HTTP API.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP listener.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use the default in prod.
//   - AccessTokenValidityDuration: lifetime of an issued token.
//   - LogLevel / LogFormat / LogFile: logger settings, see logging.Options.
//   - SeedFile: optional JSON file replacing the built-in seed tables.
type Config struct {
	EndpointAddrHTTP            string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	LogLevel                    string
	LogFormat                   string
	LogFile                     string
	SeedFile                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.LogFile = ""
	c.SeedFile = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
