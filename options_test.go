package weathermcp

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions_Defaults(t *testing.T) {
	options := applyOptions(nil)

	require.NotNil(t, options)
	assert.Nil(t, options.Logger)
	assert.Empty(t, options.Server.Command)
}

func TestApplyOptions_All(t *testing.T) {
	logger := slog.Default()

	options := applyOptions([]Option{
		WithLogger(logger),
		WithServerCommand("python3", "-m", "weather_server"),
		WithServerEnv(map[string]string{"WEATHER_API_LANG": "en"}),
		WithLauncherPath("/opt/bin/uvx"),
		WithClientInfo("test-client", "v9.9.9"),
	})

	assert.Same(t, logger, options.Logger)
	assert.Equal(t, "python3", options.Server.Command)
	assert.Equal(t, []string{"-m", "weather_server"}, options.Server.Args)
	assert.Equal(t, "en", options.Server.Env["WEATHER_API_LANG"])
	assert.Equal(t, "/opt/bin/uvx", options.LauncherPath)
	assert.Equal(t, "test-client", options.ClientName)
	assert.Equal(t, "v9.9.9", options.ClientVersion)
}

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()

	assert.Equal(t, "uvx", cfg.Command)
	assert.Contains(t, cfg.Args, "query_weather")
}
