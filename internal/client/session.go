package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/Zero-Hero-ing/mcp-interaction/internal/config"
	"github.com/Zero-Hero-ing/mcp-interaction/internal/errors"
	"github.com/Zero-Hero-ing/mcp-interaction/internal/launcher"
	"github.com/Zero-Hero-ing/mcp-interaction/internal/tool"
)

// Well-known tool names on the weather server.
const (
	ToolQueryWeather = "query_weather"
	ToolGetForecast  = "get_forecast"
	ToolGetAlerts    = "get_alerts"
)

// Session owns one connect-to-close lifetime against a spawned weather
// server. At most one tool invocation may be in flight at a time; the
// Session is intended for exclusive use by a single logical caller.
type Session struct {
	log     *slog.Logger
	options *config.Options
	session *mcp.ClientSession
	tools   []tool.Descriptor

	// Lifecycle management
	mu        sync.Mutex
	connected bool
	closed    bool
	closeOnce sync.Once
}

// New creates a disconnected session. Call Connect to establish it.
func New() *Session {
	return &Session{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Connect spawns the weather server subprocess wired to its stdio, performs
// the MCP initialize handshake, and discovers the server's tools. The
// discovered tool set fully replaces any prior set.
//
// On failure the session stays disconnected but Close remains safe to call
// and releases any partially acquired resources.
func (s *Session) Connect(ctx context.Context, options *config.Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.ErrSessionClosed
	}

	if s.connected {
		return errors.ErrAlreadyConnected
	}

	if options == nil {
		options = &config.Options{}
	}

	options.Normalize()
	s.options = options

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s.log = log.With("component", "session", "session_id", ulid.Make().String())

	transport := options.Transport
	if transport == nil {
		cmd, err := s.buildCommand()
		if err != nil {
			return &errors.ConnectionError{Err: err}
		}

		s.log.Info("Launching weather server",
			"command", cmd.Path,
			"args", cmd.Args[1:],
		)

		transport = &mcp.CommandTransport{Command: cmd}
	} else {
		s.log.Debug("Using injected transport")
	}

	mcpClient := mcp.NewClient(&mcp.Implementation{
		Name:    options.ClientName,
		Version: options.ClientVersion,
	}, nil)

	session, err := mcpClient.Connect(ctx, transport, nil)
	if err != nil {
		return &errors.ConnectionError{Err: err}
	}

	tools, err := discoverTools(ctx, session)
	if err != nil {
		// The subprocess is already alive; tear it down so a failed
		// connect leaves nothing behind.
		if closeErr := session.Close(); closeErr != nil {
			s.log.Warn("Error closing transport after failed discovery", "error", closeErr)
		}

		return err
	}

	s.session = session
	s.tools = tools
	s.connected = true

	s.log.Info("Connected to weather server", "tools", toolNames(tools))

	return nil
}

// buildCommand resolves the launcher binary and assembles the server command.
func (s *Session) buildCommand() (*exec.Cmd, error) {
	d := launcher.NewDiscoverer(&launcher.Config{
		Command: s.options.Server.Command,
		Path:    s.options.LauncherPath,
		Logger:  s.log,
	})

	path, err := d.Discover()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(path, s.options.Server.Args...)

	if len(s.options.Server.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range s.options.Server.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	return cmd, nil
}

// discoverTools issues the tool listing call and validates the response.
func discoverTools(ctx context.Context, session *mcp.ClientSession) ([]tool.Descriptor, error) {
	res, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, &errors.ProtocolError{Message: "tool discovery failed", Err: err}
	}

	tools := make([]tool.Descriptor, 0, len(res.Tools))

	for _, t := range res.Tools {
		if t == nil || t.Name == "" {
			return nil, &errors.ProtocolError{Message: "tool listing contains an unnamed tool"}
		}

		schema, ok := t.InputSchema.(*jsonschema.Schema)
		if !ok && t.InputSchema != nil {
			if data, err := json.Marshal(t.InputSchema); err == nil {
				decoded := new(jsonschema.Schema)
				if json.Unmarshal(data, decoded) == nil {
					schema = decoded
				}
			}
		}
		tools = append(tools, tool.Descriptor{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schema,
		})
	}

	return tools, nil
}

// Tools returns the tool descriptors discovered at Connect, in server order.
// It is a pure read of cached state and does not re-query the server.
func (s *Session) Tools() ([]tool.Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return nil, errors.ErrNotConnected
	}

	return slices.Clone(s.tools), nil
}

// CallTool invokes one tool and blocks until its response arrives. It
// returns the text of the first content element of the result.
//
// The tool name must be in the discovered set; otherwise ToolNotFoundError
// is returned and nothing is sent to the server.
func (s *Session) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	s.mu.Lock()

	if !s.connected {
		s.mu.Unlock()

		return "", errors.ErrNotConnected
	}

	if !s.hasToolLocked(name) {
		available := toolNames(s.tools)
		s.mu.Unlock()

		return "", &errors.ToolNotFoundError{Name: name, Available: available}
	}

	session := s.session
	s.mu.Unlock()

	s.log.Debug("Calling tool", "tool", name, "arguments", args)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", &errors.ToolInvocationError{Tool: name, Err: err}
	}

	text, textErr := firstText(res)

	if res.IsError {
		message := "tool execution failed"
		if textErr == nil && text != "" {
			message = text
		}

		return "", &errors.ToolInvocationError{Tool: name, Message: message}
	}

	if textErr != nil {
		return "", textErr
	}

	return text, nil
}

// QueryWeather queries the weather for a free-text location. When the server
// exposes query_weather the call maps directly onto it. Older servers expose
// only get_alerts and get_forecast; for those, a two-letter state code routes
// to get_alerts and a known city routes to get_forecast via the built-in
// coordinate table.
func (s *Session) QueryWeather(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", fmt.Errorf("location must not be empty")
	}

	if s.hasTool(ToolQueryWeather) {
		return s.CallTool(ctx, ToolQueryWeather, map[string]any{"location": location})
	}

	if isStateCode(location) && s.hasTool(ToolGetAlerts) {
		return s.GetAlerts(ctx, location)
	}

	if coords, ok := lookupCity(location); ok && s.hasTool(ToolGetForecast) {
		return s.GetForecast(ctx, coords.latitude, coords.longitude)
	}

	if !s.isConnected() {
		return "", errors.ErrNotConnected
	}

	return "", &errors.ToolInvocationError{
		Tool:    ToolQueryWeather,
		Message: fmt.Sprintf("no tool can answer %q; use a US state code, one of the known cities (%s), or explicit coordinates", location, knownCities()),
	}
}

// GetForecast invokes get_forecast for explicit coordinates.
func (s *Session) GetForecast(ctx context.Context, latitude, longitude float64) (string, error) {
	return s.CallTool(ctx, ToolGetForecast, map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
	})
}

// GetAlerts invokes get_alerts for a two-letter US state code.
func (s *Session) GetAlerts(ctx context.Context, state string) (string, error) {
	return s.CallTool(ctx, ToolGetAlerts, map[string]any{
		"state": strings.ToUpper(strings.TrimSpace(state)),
	})
}

// Close tears down the session and terminates the server subprocess. It is
// idempotent and never fails: teardown errors of an already-dead server are
// logged and swallowed.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.connected = false
		session := s.session
		s.session = nil
		s.tools = nil
		s.mu.Unlock()

		if session == nil {
			return
		}

		s.log.Info("Closing session")

		if err := session.Close(); err != nil {
			s.log.Warn("Error closing transport", "error", err)
		}
	})

	return nil
}

// isConnected reports whether the session is live.
// This method is safe to call from any goroutine.
func (s *Session) isConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connected
}

func (s *Session) hasTool(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasToolLocked(name)
}

// hasToolLocked checks the discovered set. Caller must hold s.mu.
func (s *Session) hasToolLocked(name string) bool {
	return slices.ContainsFunc(s.tools, func(d tool.Descriptor) bool {
		return d.Name == name
	})
}

// firstText extracts the text of the first content element of a tool result.
// A result with no content, or whose first element is not text, is a
// protocol error rather than an empty answer.
func firstText(res *mcp.CallToolResult) (string, error) {
	if len(res.Content) == 0 {
		return "", &errors.ProtocolError{Message: "tool result contained no content"}
	}

	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		return "", &errors.ProtocolError{
			Message: fmt.Sprintf("first content element is %T, not text", res.Content[0]),
		}
	}

	return text.Text, nil
}

func toolNames(tools []tool.Descriptor) []string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}

	return names
}

// isStateCode reports whether location looks like a two-letter US state code.
func isStateCode(location string) bool {
	if len(location) != 2 {
		return false
	}

	for _, r := range location {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
