package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	weathermcp "github.com/Zero-Hero-ing/mcp-interaction"
	"github.com/Zero-Hero-ing/mcp-interaction/internal/config"
	"github.com/Zero-Hero-ing/mcp-interaction/internal/shell"
)

const version = "v1.0.0"

type rootFlags struct {
	interactive bool
	verbose     bool
	configPath  string
	launcher    string
	command     string
	args        []string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "weatherctl [location...]",
		Short: "Weather MCP client",
		Long: `weatherctl launches the weather MCP server as a subprocess, speaks the
Model Context Protocol over its stdio, and queries it for weather.

Without arguments it runs a short example tour; with locations it queries
each one; with --interactive it drops into a read-eval loop.`,
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false,
		"run an interactive session")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"enable debug logging to stderr")
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "",
		"path to a TOML configuration file")
	rootCmd.Flags().StringVar(&flags.launcher, "launcher", "",
		"explicit path to the launcher binary")
	rootCmd.Flags().StringVar(&flags.command, "command", "",
		"server launch command (default: uvx)")
	rootCmd.Flags().StringArrayVar(&flags.args, "arg", nil,
		"argument for the server launch command (repeatable)")

	return rootCmd
}

func run(cmd *cobra.Command, flags *rootFlags, locations []string) error {
	options, err := buildOptions(flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	client := weathermcp.NewClient()
	defer client.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Connecting to weather MCP server...")

	if err := client.Connect(ctx, options...); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	tools, err := client.Tools()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Connected. Available tools: %v\n", names)

	switch {
	case flags.interactive:
		sh := shell.New(loggerFor(flags), client, cmd.InOrStdin(), cmd.OutOrStdout())

		return sh.Run(ctx)

	case len(locations) > 0:
		for _, location := range locations {
			report, queryErr := client.QueryWeather(ctx, location)
			if queryErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\nError: %v\n", location, queryErr)

				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n%s\n", location, report)
		}

		return nil

	default:
		return runTour(ctx, cmd.OutOrStdout(), client)
	}
}

// buildOptions assembles session options from flags and the optional
// configuration file. Flags win over file values.
func buildOptions(flags *rootFlags) ([]weathermcp.Option, error) {
	server := weathermcp.DefaultServerConfig()

	if flags.configPath != "" {
		fileOpts := &config.Options{Server: server}
		if err := config.LoadFile(flags.configPath, fileOpts); err != nil {
			return nil, err
		}

		server = fileOpts.Server
	}

	if flags.command != "" {
		server.Command = flags.command
		server.Args = nil
	}

	if len(flags.args) > 0 {
		server.Args = flags.args
	}

	options := []weathermcp.Option{
		weathermcp.WithLogger(loggerFor(flags)),
		weathermcp.WithServerCommand(server.Command, server.Args...),
		weathermcp.WithClientInfo("weatherctl", version),
	}

	if len(server.Env) > 0 {
		options = append(options, weathermcp.WithServerEnv(server.Env))
	}

	if flags.launcher != "" {
		options = append(options, weathermcp.WithLauncherPath(flags.launcher))
	}

	return options, nil
}

func loggerFor(flags *rootFlags) *slog.Logger {
	if !flags.verbose {
		return weathermcp.NopLogger()
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
