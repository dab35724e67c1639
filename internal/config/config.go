package config

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// DefaultClientName identifies this client during the MCP handshake.
	DefaultClientName = "weather-mcp-client"

	// DefaultClientVersion is reported during the MCP handshake.
	DefaultClientVersion = "v1.0.0"
)

// ServerConfig describes how to launch the weather server subprocess.
type ServerConfig struct {
	// Command is the launcher binary. It is resolved against PATH and a
	// small set of common install locations before spawning.
	Command string `json:"command"`

	// Args are passed to the launcher verbatim.
	Args []string `json:"args,omitempty"`

	// Env holds additional environment variables for the server process,
	// merged over the parent environment.
	Env map[string]string `json:"env,omitempty"`
}

// DefaultServerConfig returns the documented default launch command: uvx
// fetching and running the weather server straight from its repository.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Command: "uvx",
		Args: []string{
			"--from",
			"git+https://github.com/Zero-Hero-ing/Zero-Hero-ing.git",
			"query_weather",
		},
	}
}

// Options configures a weather client session.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Server is the launch command for the weather server subprocess.
	// Zero value means DefaultServerConfig().
	Server ServerConfig

	// LauncherPath is an explicit path to the launcher binary. If set, it
	// is used as-is and Server.Command is not resolved against PATH.
	LauncherPath string

	// ClientName and ClientVersion identify this client during the MCP
	// initialize handshake. Defaults apply when empty.
	ClientName    string
	ClientVersion string

	// Transport, when set, is used instead of spawning a subprocess.
	// Intended for tests and in-process servers.
	Transport mcp.Transport
}

// Normalize fills in defaults for unset fields.
func (o *Options) Normalize() {
	if o.Server.Command == "" && len(o.Server.Args) == 0 {
		def := DefaultServerConfig()
		def.Env = o.Server.Env
		o.Server = def
	}

	if o.ClientName == "" {
		o.ClientName = DefaultClientName
	}

	if o.ClientVersion == "" {
		o.ClientVersion = DefaultClientVersion
	}
}
