package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the TOML key mapping for a client configuration file.
//
//	[server]
//	command = "uvx"
//	args = ["--from", "git+https://github.com/Zero-Hero-ing/Zero-Hero-ing.git", "query_weather"]
//	[server.env]
//	WEATHER_API_LANG = "en"
type fileConfig struct {
	Server serverFileConfig `toml:"server"`
}

type serverFileConfig struct {
	Command string            `toml:"command"`
	Args    []string          `toml:"args"`
	Env     map[string]string `toml:"env"`
}

// LoadFile overlays a TOML configuration file onto opts. Keys absent from
// the file leave the corresponding option untouched.
func LoadFile(path string, opts *Options) error {
	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load client config: %w", err)
	}

	if meta.IsDefined("server", "command") {
		opts.Server.Command = strings.TrimSpace(raw.Server.Command)
	}

	if meta.IsDefined("server", "args") {
		opts.Server.Args = raw.Server.Args
	}

	if meta.IsDefined("server", "env") {
		opts.Server.Env = raw.Server.Env
	}

	return nil
}
