package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Defaults(t *testing.T) {
	opts := &Options{}
	opts.Normalize()

	require.Equal(t, "uvx", opts.Server.Command)
	require.Contains(t, opts.Server.Args, "query_weather")
	require.Equal(t, DefaultClientName, opts.ClientName)
	require.Equal(t, DefaultClientVersion, opts.ClientVersion)
}

func TestNormalize_KeepsExplicitServer(t *testing.T) {
	opts := &Options{
		Server: ServerConfig{Command: "python3", Args: []string{"server.py"}},
	}
	opts.Normalize()

	require.Equal(t, "python3", opts.Server.Command)
	require.Equal(t, []string{"server.py"}, opts.Server.Args)
}

func TestNormalize_KeepsEnvWithDefaultCommand(t *testing.T) {
	opts := &Options{
		Server: ServerConfig{Env: map[string]string{"WEATHER_API_LANG": "zh"}},
	}
	opts.Normalize()

	require.Equal(t, "uvx", opts.Server.Command)
	require.Equal(t, map[string]string{"WEATHER_API_LANG": "zh"}, opts.Server.Env)
}

func TestLoadFile_OverridesServer(t *testing.T) {
	path := writeConfig(t, `
[server]
command = "python3"
args = ["-m", "weather_server"]

[server.env]
WEATHER_API_LANG = "en"
`)

	opts := &Options{Server: DefaultServerConfig()}

	require.NoError(t, LoadFile(path, opts))
	require.Equal(t, "python3", opts.Server.Command)
	require.Equal(t, []string{"-m", "weather_server"}, opts.Server.Args)
	require.Equal(t, map[string]string{"WEATHER_API_LANG": "en"}, opts.Server.Env)
}

func TestLoadFile_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
[server]
command = "uv"
`)

	opts := &Options{Server: DefaultServerConfig()}

	require.NoError(t, LoadFile(path, opts))
	require.Equal(t, "uv", opts.Server.Command)
	// Args from the default launch command survive a command-only override.
	require.Contains(t, opts.Server.Args, "query_weather")
}

func TestLoadFile_Missing(t *testing.T) {
	opts := &Options{}

	err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"), opts)

	require.Error(t, err)
	require.Contains(t, err.Error(), "load client config")
}

func TestLoadFile_Malformed(t *testing.T) {
	path := writeConfig(t, `[server`)

	err := LoadFile(path, &Options{})

	require.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "weather.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}
