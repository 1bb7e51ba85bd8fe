package config

// Config holds runtime settings for the jobapp terminal client.
//
// Fields:
//   - SeedFile: optional JSON file replacing the built-in seed tables.
//   - LogLevel: debug, info, warn or error.
//   - LogFile: optional path of a rotating log file; empty logs to stderr only.
type Config struct {
	SeedFile string
	LogLevel string
	LogFile  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.SeedFile = ""
	c.LogLevel = "warn"
	c.LogFile = ""
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
