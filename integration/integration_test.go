//go:build integration

// Package integration exercises the client against a real subprocess: the
// stub weather server from examples/weatherserver, launched with go run.
// Run with: go test -tags integration ./integration/...
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	weathermcp "github.com/Zero-Hero-ing/mcp-interaction"
)

func serverOptions() []weathermcp.Option {
	return []weathermcp.Option{
		weathermcp.WithServerCommand("go", "run", "../examples/weatherserver"),
	}
}

func TestSubprocess_ConnectListQueryClose(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client := weathermcp.NewClient()
	defer client.Close()

	require.NoError(t, client.Connect(ctx, serverOptions()...))

	tools, err := client.Tools()
	require.NoError(t, err)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}

	assert.Contains(t, names, weathermcp.ToolQueryWeather)
	assert.Contains(t, names, weathermcp.ToolGetForecast)
	assert.Contains(t, names, weathermcp.ToolGetAlerts)

	report, err := client.QueryWeather(ctx, "Beijing")
	require.NoError(t, err)
	assert.Contains(t, report, "Beijing")

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

func TestSubprocess_ServerReportedToolError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	err := weathermcp.WithSession(ctx, func(c weathermcp.Client) error {
		_, queryErr := c.QueryWeather(ctx, "Atlantis")

		var invErr *weathermcp.ToolInvocationError

		require.ErrorAs(t, queryErr, &invErr)
		assert.Equal(t, weathermcp.ToolQueryWeather, invErr.Tool)

		// The session survives a failed query.
		report, nextErr := c.QueryWeather(ctx, "Paris")
		require.NoError(t, nextErr)
		assert.Contains(t, report, "Paris")

		return nil
	}, serverOptions()...)

	require.NoError(t, err)
}

func TestSubprocess_GetForecastAndAlerts(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	err := weathermcp.WithSession(ctx, func(c weathermcp.Client) error {
		forecast, err := c.GetForecast(ctx, 37.7749, -122.4194)
		require.NoError(t, err)
		assert.Contains(t, forecast, "Forecast")

		alerts, err := c.GetAlerts(ctx, "ca")
		require.NoError(t, err)
		assert.Contains(t, alerts, "CA")

		return nil
	}, serverOptions()...)

	require.NoError(t, err)
}
