// Package config holds session configuration for the weather MCP client:
// the server launch command, logging, and client identification. It also
// loads TOML configuration files for the CLI.
package config
