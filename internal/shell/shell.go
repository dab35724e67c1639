package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/Zero-Hero-ing/mcp-interaction/internal/tool"
)

// Session is the part of the weather client the shell drives.
type Session interface {
	Tools() ([]tool.Descriptor, error)
	QueryWeather(ctx context.Context, location string) (string, error)
	GetForecast(ctx context.Context, latitude, longitude float64) (string, error)
	GetAlerts(ctx context.Context, state string) (string, error)
}

// Output styles, rendered plain when stdout is not a terminal.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	toolStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Shell is the interactive dispatch loop.
type Shell struct {
	log     *slog.Logger
	session Session
	in      io.Reader
	out     io.Writer
}

// New creates a shell reading commands from in and printing to out.
func New(log *slog.Logger, session Session, in io.Reader, out io.Writer) *Shell {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Shell{
		log:     log.With("component", "shell"),
		session: session,
		in:      in,
		out:     out,
	}
}

// Run executes the read-eval loop until the quit command, end of input, or
// context cancellation. Per-query errors are printed inline and never end
// the loop.
func (sh *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(sh.out, headerStyle.Render("Weather MCP Client Interactive Mode"))
	sh.printHelp()

	lines := make(chan string)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(lines)

		scanner := bufio.NewScanner(sh.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}

		return scanner.Err()
	})

	for {
		fmt.Fprint(sh.out, promptStyle.Render("weather> "))

		select {
		case <-ctx.Done():
			fmt.Fprintln(sh.out)
			fmt.Fprintln(sh.out, "Interrupted, shutting down")

			// The reader goroutine may stay blocked on a terminal read;
			// it exits with the process.
			return nil

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(sh.out)

				return eg.Wait()
			}

			if quit := sh.dispatch(ctx, line); quit {
				fmt.Fprintln(sh.out, "Goodbye!")

				return nil
			}
		}
	}
}

// command is the classification of one input line.
type command int

const (
	cmdEmpty command = iota
	cmdQuit
	cmdTools
	cmdHelp
	cmdForecast
	cmdAlerts
	cmdQuery
)

// parseInput classifies one line of input. The returned rest holds the
// arguments after the keyword for forecast/alerts, or the whole trimmed
// line for weather queries.
func parseInput(line string) (command, string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return cmdEmpty, ""
	}

	switch strings.ToLower(trimmed) {
	case "quit", "exit":
		return cmdQuit, ""
	case "tools":
		return cmdTools, ""
	case "help":
		return cmdHelp, ""
	}

	keyword, rest, _ := strings.Cut(trimmed, " ")

	switch strings.ToLower(keyword) {
	case "forecast":
		return cmdForecast, strings.TrimSpace(rest)
	case "alerts":
		return cmdAlerts, strings.TrimSpace(rest)
	}

	return cmdQuery, trimmed
}

// dispatch executes one input line. It returns true when the loop should end.
func (sh *Shell) dispatch(ctx context.Context, line string) bool {
	cmd, rest := parseInput(line)

	switch cmd {
	case cmdEmpty:
		fmt.Fprintln(sh.out, dimStyle.Render("Enter a location or command, 'help' for help"))

	case cmdQuit:
		return true

	case cmdTools:
		sh.printTools()

	case cmdHelp:
		sh.printHelp()

	case cmdForecast:
		sh.runForecast(ctx, rest)

	case cmdAlerts:
		sh.runAlerts(ctx, rest)

	case cmdQuery:
		sh.runQuery(ctx, rest)
	}

	return false
}

func (sh *Shell) runQuery(ctx context.Context, location string) {
	sh.log.Debug("Querying weather", "location", location)

	result, err := sh.session.QueryWeather(ctx, location)
	if err != nil {
		sh.printError(err)

		return
	}

	fmt.Fprintln(sh.out, headerStyle.Render("Weather Result:"))
	fmt.Fprintln(sh.out, result)
}

func (sh *Shell) runForecast(ctx context.Context, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		fmt.Fprintln(sh.out, errorStyle.Render("Usage: forecast <latitude> <longitude>"))

		return
	}

	lat, latErr := strconv.ParseFloat(fields[0], 64)
	lon, lonErr := strconv.ParseFloat(fields[1], 64)

	if latErr != nil || lonErr != nil {
		fmt.Fprintln(sh.out, errorStyle.Render("Invalid coordinates. Usage: forecast <latitude> <longitude>"))

		return
	}

	result, err := sh.session.GetForecast(ctx, lat, lon)
	if err != nil {
		sh.printError(err)

		return
	}

	fmt.Fprintln(sh.out, headerStyle.Render("Weather Forecast:"))
	fmt.Fprintln(sh.out, result)
}

func (sh *Shell) runAlerts(ctx context.Context, args string) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		fmt.Fprintln(sh.out, errorStyle.Render("Usage: alerts <state> (e.g. alerts CA)"))

		return
	}

	result, err := sh.session.GetAlerts(ctx, fields[0])
	if err != nil {
		sh.printError(err)

		return
	}

	fmt.Fprintln(sh.out, headerStyle.Render("Weather Alerts:"))
	fmt.Fprintln(sh.out, result)
}

func (sh *Shell) printTools() {
	tools, err := sh.session.Tools()
	if err != nil {
		sh.printError(err)

		return
	}

	fmt.Fprintln(sh.out, headerStyle.Render("Available Tools:"))

	for i, t := range tools {
		fmt.Fprintf(sh.out, "%d. %s\n", i+1, toolStyle.Render(t.Name))

		if t.Description != "" {
			fmt.Fprintf(sh.out, "   %s\n", t.Description)
		}

		if t.InputSchema != nil && len(t.InputSchema.Properties) > 0 {
			fmt.Fprintf(sh.out, "   %s\n", dimStyle.Render("arguments: "+schemaSummary(t.InputSchema)))
		}
	}
}

func (sh *Shell) printHelp() {
	help := []string{
		"Commands:",
		"  <location>               query weather (e.g. Beijing, New York)",
		"  forecast <lat> <lon>     forecast for coordinates",
		"  alerts <state>           alerts for a US state (e.g. alerts CA)",
		"  tools                    list available server tools",
		"  help                     show this help",
		"  quit                     exit",
	}

	fmt.Fprintln(sh.out, dimStyle.Render(strings.Join(help, "\n")))
}

func (sh *Shell) printError(err error) {
	sh.log.Debug("Command failed", "error", err)

	fmt.Fprintln(sh.out, errorStyle.Render("Error: "+err.Error()))
}
