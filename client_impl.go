package weathermcp

import (
	"context"

	"github.com/Zero-Hero-ing/mcp-interaction/internal/client"
)

// clientWrapper adapts the internal session to the public interface.
type clientWrapper struct {
	impl *client.Session
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal session implementation.
func newClientImpl() Client {
	return &clientWrapper{impl: client.New()}
}

// Connect spawns the weather server and establishes the session.
func (c *clientWrapper) Connect(ctx context.Context, opts ...Option) error {
	return c.impl.Connect(ctx, applyOptions(opts))
}

// Tools returns the tool descriptors discovered at Connect.
func (c *clientWrapper) Tools() ([]ToolDescriptor, error) {
	return c.impl.Tools()
}

// CallTool invokes one tool and blocks until its response arrives.
func (c *clientWrapper) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	return c.impl.CallTool(ctx, name, args)
}

// QueryWeather queries the weather for a free-text location.
func (c *clientWrapper) QueryWeather(ctx context.Context, location string) (string, error) {
	return c.impl.QueryWeather(ctx, location)
}

// GetForecast invokes get_forecast for explicit coordinates.
func (c *clientWrapper) GetForecast(ctx context.Context, latitude, longitude float64) (string, error) {
	return c.impl.GetForecast(ctx, latitude, longitude)
}

// GetAlerts invokes get_alerts for a two-letter US state code.
func (c *clientWrapper) GetAlerts(ctx context.Context, state string) (string, error) {
	return c.impl.GetAlerts(ctx, state)
}

// Close tears down the session and terminates the server subprocess.
func (c *clientWrapper) Close() error {
	return c.impl.Close()
}
