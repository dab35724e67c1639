package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zero-Hero-ing/mcp-interaction/internal/errors"
)

// TestDiscoverer_ExplicitPathNotFound tests that a bad explicit path returns
// LauncherNotFoundError without falling back to PATH search.
func TestDiscoverer_ExplicitPathNotFound(t *testing.T) {
	d := NewDiscoverer(&Config{
		Command: "uvx",
		Path:    "/nonexistent/path/to/uvx",
	})

	_, err := d.Discover()

	require.Error(t, err)

	var notFound *errors.LauncherNotFoundError

	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []string{"/nonexistent/path/to/uvx"}, notFound.SearchedPaths)
}

// TestDiscoverer_ExplicitPath tests discovery with an explicit path.
func TestDiscoverer_ExplicitPath(t *testing.T) {
	fake := writeFakeLauncher(t, "uvx")

	d := NewDiscoverer(&Config{Command: "uvx", Path: fake})

	path, err := d.Discover()

	require.NoError(t, err)
	require.Equal(t, fake, path)
}

// TestDiscoverer_PathSearch tests discovery through PATH.
func TestDiscoverer_PathSearch(t *testing.T) {
	fake := writeFakeLauncher(t, "weather-launcher")
	t.Setenv("PATH", filepath.Dir(fake))

	d := NewDiscoverer(&Config{Command: "weather-launcher"})

	path, err := d.Discover()

	require.NoError(t, err)
	require.Equal(t, fake, path)
}

// TestDiscoverer_NotFoundListsSearchedPaths tests that a miss reports every
// location that was checked.
func TestDiscoverer_NotFoundListsSearchedPaths(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	d := NewDiscoverer(&Config{Command: "definitely-not-installed"})

	_, err := d.Discover()

	require.Error(t, err)

	var notFound *errors.LauncherNotFoundError

	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "definitely-not-installed", notFound.Command)
	require.Contains(t, notFound.SearchedPaths, "$PATH")
	require.Contains(t, notFound.SearchedPaths, "/usr/local/bin/definitely-not-installed")
}

func writeFakeLauncher(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	return path
}
