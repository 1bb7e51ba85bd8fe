package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	return Config{
		EndpointAddrHTTP:            ":8080",
		SecretKey:                   "secretKey",
		AccessTokenValidityDuration: 60 * time.Minute,
		LogLevel:                    "info",
		LogFormat:                   "json",
	}
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"server"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		mutate      func(*Config)
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", ":9090", "-s", "k", "-t", "5", "-l", "debug", "-f", "srv.log", "-d", "seed.json"},
			mutate: func(c *Config) {
				c.EndpointAddrHTTP = ":9090"
				c.SecretKey = "k"
				c.AccessTokenValidityDuration = 5 * time.Minute
				c.LogLevel = "debug"
				c.LogFile = "srv.log"
				c.SeedFile = "seed.json"
			},
		},
		{name: "no flags", mutate: func(*Config) {}},
		{name: "bad minutes", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			got := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&got) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&got) })
			want := defaults()
			tt.mutate(&want)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")
	b, err := json.Marshal(map[string]any{
		"endpoint_addr_http":             ":7070",
		"access_token_validity_duration": "2h",
		"log_format":                     "text",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	t.Run("overlays present keys", func(t *testing.T) {
		withArgs(t, "-c", path)
		got := defaults()
		parseJson(&got)

		want := defaults()
		want.EndpointAddrHTTP = ":7070"
		want.AccessTokenValidityDuration = 2 * time.Hour
		want.LogFormat = "text"
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("flags win over json", func(t *testing.T) {
		withArgs(t, "-config", path, "-a", ":6060")
		got := LoadConfig()
		assert.Equal(t, ":6060", got.EndpointAddrHTTP)
		assert.Equal(t, 2*time.Hour, got.AccessTokenValidityDuration)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		withArgs(t, "-c", bad)
		got := defaults()
		require.Panics(t, func() { parseJson(&got) })
	})
}
