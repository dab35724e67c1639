package weathermcp

import "context"

// Client is a stateful session against one spawned weather server process.
//
// A client is either disconnected (no process, empty tool set) or connected
// (process running, tool set populated by the discovery performed during
// Connect). At most one tool invocation may be in flight at a time; the
// client is intended for exclusive use by a single logical caller.
//
// Lifecycle: clients are single-use. After Close(), create a new client
// with NewClient().
//
// Example usage:
//
//	client := NewClient()
//	defer client.Close()
//
//	err := client.Connect(ctx,
//	    WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := client.QueryWeather(ctx, "Beijing")
type Client interface {
	// Connect spawns the weather server subprocess, performs the MCP
	// initialize handshake, and discovers the server's tools.
	// Returns a *ConnectionError if the process cannot be spawned or the
	// handshake fails, and a *ProtocolError if discovery returns a
	// malformed response. After a failed Connect, Close is still safe and
	// releases any partially acquired resources.
	Connect(ctx context.Context, opts ...Option) error

	// Tools returns the tool descriptors discovered at Connect, in server
	// order. It is a pure read of cached state; discovery happens only at
	// Connect. Returns ErrNotConnected before Connect.
	Tools() ([]ToolDescriptor, error)

	// CallTool invokes one tool and blocks until its response arrives,
	// returning the text of the first content element. The name must be
	// in the discovered set, otherwise *ToolNotFoundError is returned and
	// nothing is sent to the server. Server-side execution failures and
	// mid-call transport failures surface as *ToolInvocationError.
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)

	// QueryWeather queries the weather for a free-text location via the
	// query_weather tool. On servers exposing only get_forecast and
	// get_alerts, a two-letter state code routes to get_alerts and a
	// known city routes to get_forecast.
	QueryWeather(ctx context.Context, location string) (string, error)

	// GetForecast invokes get_forecast for explicit coordinates.
	GetForecast(ctx context.Context, latitude, longitude float64) (string, error)

	// GetAlerts invokes get_alerts for a two-letter US state code.
	GetAlerts(ctx context.Context, state string) (string, error)

	// Close tears down the session and terminates the server subprocess.
	// Safe to call multiple times and after a failed Connect; teardown
	// errors are logged and swallowed.
	Close() error
}

// NewClient creates a disconnected client.
//
// Call Connect() with options to launch the server and establish a session:
//
//	client := NewClient()
//	err := client.Connect(ctx,
//	    WithLogger(slog.Default()),
//	)
func NewClient() Client {
	return newClientImpl()
}
