package weathermcp

import (
	"log/slog"

	"github.com/Zero-Hero-ing/mcp-interaction/internal/config"
)

// Option configures SessionOptions using the functional options pattern.
type Option func(*SessionOptions)

// applyOptions applies functional options to a SessionOptions struct.
func applyOptions(opts []Option) *config.Options {
	options := &SessionOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// SessionOptions is a type alias to config.Options, so direct use works
	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *SessionOptions) {
		o.Logger = logger
	}
}

// WithServerCommand replaces the default server launch command. The command
// is resolved against PATH and common install locations; args are passed
// verbatim.
func WithServerCommand(command string, args ...string) Option {
	return func(o *SessionOptions) {
		o.Server.Command = command
		o.Server.Args = args
	}
}

// WithServerEnv provides additional environment variables for the server
// process, merged over the parent environment.
func WithServerEnv(env map[string]string) Option {
	return func(o *SessionOptions) {
		o.Server.Env = env
	}
}

// WithLauncherPath sets an explicit path to the launcher binary, skipping
// PATH search.
func WithLauncherPath(path string) Option {
	return func(o *SessionOptions) {
		o.LauncherPath = path
	}
}

// WithClientInfo overrides the name and version this client reports during
// the MCP initialize handshake.
func WithClientInfo(name, version string) Option {
	return func(o *SessionOptions) {
		o.ClientName = name
		o.ClientVersion = version
	}
}

// WithTransport injects a custom transport instead of spawning a subprocess.
// Intended for tests and in-process servers.
func WithTransport(t Transport) Option {
	return func(o *SessionOptions) {
		o.Transport = t
	}
}
