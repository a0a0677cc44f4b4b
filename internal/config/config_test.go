package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 30000, cfg.CallTimeoutMS)
	require.Equal(t, "https://finnhub.io/api/v1", cfg.BaseURL)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("MCP_PORT", "9090")
	t.Setenv("FINNHUB_API_KEY", "k-from-env")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "k-from-env", cfg.APIKey)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := &Config{Port: 8080, CallTimeoutMS: 1000, BaseURL: "https://finnhub.io/api/v1", LogLevel: "info"}
	require.NoError(t, valid.Validate())

	badPort := *valid
	badPort.Port = 0
	require.Error(t, badPort.Validate())

	badTimeout := *valid
	badTimeout.CallTimeoutMS = 0
	require.Error(t, badTimeout.Validate())

	badLevel := *valid
	badLevel.LogLevel = "verbose"
	require.Error(t, badLevel.Validate())

	noBase := *valid
	noBase.BaseURL = ""
	require.Error(t, noBase.Validate())
}
