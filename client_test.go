package weathermcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewClient_Creation tests client creation and immediate close.
func TestNewClient_Creation(t *testing.T) {
	client := NewClient()
	require.NotNil(t, client)

	err := client.Close()
	require.NoError(t, err)
}

// TestClient_OperationsNotConnected tests that every operation fails with
// ErrNotConnected before Connect, without spawning anything.
func TestClient_OperationsNotConnected(t *testing.T) {
	client := NewClient()
	defer client.Close()

	ctx := context.Background()

	_, err := client.Tools()
	require.ErrorIs(t, err, ErrNotConnected)

	_, err = client.CallTool(ctx, ToolQueryWeather, map[string]any{"location": "Beijing"})
	require.ErrorIs(t, err, ErrNotConnected)

	_, err = client.QueryWeather(ctx, "Beijing")
	require.ErrorIs(t, err, ErrNotConnected)

	_, err = client.GetForecast(ctx, 39.9, 116.4)
	require.ErrorIs(t, err, ErrNotConnected)

	_, err = client.GetAlerts(ctx, "CA")
	require.ErrorIs(t, err, ErrNotConnected)
}

// TestClient_CloseIdempotent tests that Close is safe to call repeatedly.
func TestClient_CloseIdempotent(t *testing.T) {
	client := NewClient()

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

// TestClient_ConnectAfterClose tests that clients are single-use.
func TestClient_ConnectAfterClose(t *testing.T) {
	client := NewClient()
	require.NoError(t, client.Close())

	err := client.Connect(context.Background())
	require.ErrorIs(t, err, ErrSessionClosed)
}

// TestClient_ConnectLauncherMissing tests the spawn-failure path: a missing
// launcher surfaces as ConnectionError wrapping LauncherNotFoundError, and
// cleanup afterwards is a safe no-op.
func TestClient_ConnectLauncherMissing(t *testing.T) {
	client := NewClient()
	defer client.Close()

	err := client.Connect(context.Background(),
		WithLauncherPath("/nonexistent/uvx"),
	)

	require.Error(t, err)

	var connErr *ConnectionError

	require.ErrorAs(t, err, &connErr)

	var notFound *LauncherNotFoundError

	require.ErrorAs(t, err, &notFound)

	require.NoError(t, client.Close())
}
