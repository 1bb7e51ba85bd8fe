package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobapp/internal/flagx"
	"github.com/dmitrijs2005/jobapp/internal/timex"
)

// JsonConfig is the DTO read from the JSON config file. The token validity
// is a timex.Duration, so both "90m" and integer nanoseconds are accepted.
// Keys missing from the file leave the current values untouched.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    *string         `json:"log_level"`
	LogFormat                   *string         `json:"log_format"`
	LogFile                     *string         `json:"log_file"`
	SeedFile                    *string         `json:"seed_file"`
}

// parseJson loads configuration values from the file named by the -c or
// -config flag into config. Without either flag nothing is loaded. Read and
// unmarshal errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.LogFile, c.LogFile)
	setString(&config.SeedFile, c.SeedFile)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
