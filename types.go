package weathermcp

import (
	"github.com/Zero-Hero-ing/mcp-interaction/internal/client"
	"github.com/Zero-Hero-ing/mcp-interaction/internal/config"
	"github.com/Zero-Hero-ing/mcp-interaction/internal/tool"
)

// Re-export types from internal packages

// ===== Options and Configuration =====

// SessionOptions configures a weather client session.
type SessionOptions = config.Options

// ServerConfig describes how to launch the weather server subprocess.
type ServerConfig = config.ServerConfig

// DefaultServerConfig returns the documented default launch command: uvx
// fetching and running the weather server straight from its repository.
func DefaultServerConfig() ServerConfig {
	return config.DefaultServerConfig()
}

// ===== Tools =====

// ToolDescriptor is an immutable description of one remote tool, discovered
// from the server's tool listing.
type ToolDescriptor = tool.Descriptor

// Well-known tool names on the weather server.
const (
	// ToolQueryWeather answers a free-text location query.
	ToolQueryWeather = client.ToolQueryWeather

	// ToolGetForecast answers a latitude/longitude forecast query.
	ToolGetForecast = client.ToolGetForecast

	// ToolGetAlerts answers a US-state alerts query.
	ToolGetAlerts = client.ToolGetAlerts
)
