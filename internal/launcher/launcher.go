package launcher

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Zero-Hero-ing/mcp-interaction/internal/errors"
)

// Config holds configuration for launcher discovery.
type Config struct {
	// Command is the launcher binary name to search for (e.g. "uvx").
	Command string

	// Path is an explicit launcher path that skips PATH search.
	Path string

	// Logger is an optional logger for discovery operations.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// Discoverer locates the launcher binary.
type Discoverer interface {
	// Discover returns the path to the launcher binary, or a
	// *errors.LauncherNotFoundError listing everywhere it looked.
	Discover() (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a launcher discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &discoverer{
		cfg: cfg,
		log: log.With("component", "launcher"),
	}
}

// Discover locates the launcher binary.
func (d *discoverer) Discover() (string, error) {
	// An explicit path is used as-is and is the only candidate.
	if d.cfg.Path != "" {
		d.log.Debug("Using explicit launcher path", "path", d.cfg.Path)

		if _, err := os.Stat(d.cfg.Path); err == nil {
			return d.cfg.Path, nil
		}

		return "", &errors.LauncherNotFoundError{
			Command:       d.cfg.Command,
			SearchedPaths: []string{d.cfg.Path},
		}
	}

	command := d.cfg.Command
	if command == "" {
		command = "uvx"
	}

	searchedPaths := make([]string, 0, 5)

	d.log.Debug("Searching for launcher in PATH", "command", command)

	if path, err := exec.LookPath(command); err == nil {
		d.log.Debug("Found launcher in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	commonPaths := []string{
		filepath.Join("/usr/local/bin", command),
		filepath.Join("/usr/bin", command),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths,
			filepath.Join(homeDir, ".local/bin", command),
			filepath.Join(homeDir, ".cargo/bin", command),
		)
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found launcher at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("Launcher not found in any searched paths",
		"command", command,
		"searched_paths", searchedPaths,
	)

	return "", &errors.LauncherNotFoundError{
		Command:       command,
		SearchedPaths: searchedPaths,
	}
}
