package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "fiveeleven", cfg.Transit.Provider)
	assert.Equal(t, "fiveeleven", cfg.Transit.VisitProvider)
	assert.Equal(t, "SF", cfg.Transit.Agency)
	assert.Equal(t, 10*time.Second, cfg.Transit.Timeout())
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.False(t, cfg.Setup.StrictStopResolution)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "config.yml", `
server:
  port: 8080
log:
  level: debug
transit:
  visitProvider: gtfsrt
  agency: BA
  apiKey: from-file
  timeoutMS: 2500
  tripUpdatesURL: https://example.com/trip-updates
store:
  driver: file
setup:
  strictStopResolution: true
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gtfsrt", cfg.Transit.VisitProvider)
	assert.Equal(t, "fiveeleven", cfg.Transit.Provider)
	assert.Equal(t, "BA", cfg.Transit.Agency)
	assert.Equal(t, "from-file", cfg.Transit.APIKey)
	assert.Equal(t, 2500*time.Millisecond, cfg.Transit.Timeout())
	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, DefaultStoreFilePath, cfg.Store.Path)
	assert.True(t, cfg.Setup.StrictStopResolution)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	p := writeFile(t, "config.yml", "server:\n  port: 8080\ntransit:\n  apiKey: from-file\n")
	t.Setenv("FIVE_ELEVEN_API_KEY", "from-env")
	t.Setenv("SFTT_PORT", "9090")
	t.Setenv("SFTT_STORE_DRIVER", "dynamodb")
	t.Setenv("STAGE", "prod")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Transit.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "dynamodb", cfg.Store.Driver)
	assert.Equal(t, "prod", cfg.Store.Stage)
}

func TestLoad_FirstExistingPathWins(t *testing.T) {
	first := writeFile(t, "a.yml", "server:\n  port: 1111\n")
	second := writeFile(t, "b.yml", "server:\n  port: 2222\n")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"), first, second)
	require.NoError(t, err)
	assert.Equal(t, 1111, cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown store driver", "store:\n  driver: redis\n"},
		{"unknown visit provider", "transit:\n  visitProvider: bart\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"port out of range", "server:\n  port: 70000\n"},
		{"gtfsrt without feed", "transit:\n  visitProvider: gtfsrt\n"},
		{"bad feed url", "transit:\n  tripUpdatesURL: not a url\n"},
		{"malformed yaml", "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yml", tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadAppConfig_SetsGlobal(t *testing.T) {
	prev := Config
	t.Cleanup(func() { Config = prev })

	require.NoError(t, LoadAppConfig(writeFile(t, "config.yml", "server:\n  port: 4242\n")))
	assert.Equal(t, 4242, Config.Server.Port)
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))

	t.Setenv("SFTT_TEST_PRESET", "kept")
	p := writeFile(t, ".env", "SFTT_TEST_FROM_DOTENV=loaded\nSFTT_TEST_PRESET=replaced\n")
	t.Cleanup(func() { os.Unsetenv("SFTT_TEST_FROM_DOTENV") })

	require.NoError(t, LoadEnvFile(p))
	assert.Equal(t, "loaded", os.Getenv("SFTT_TEST_FROM_DOTENV"))
	assert.Equal(t, "kept", os.Getenv("SFTT_TEST_PRESET"))
}
