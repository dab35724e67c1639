package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ClientError is the base interface for all weather client errors.
type ClientError interface {
	error
	IsWeatherClientError() bool
}

// Compile-time verification that all error types implement ClientError.
var (
	_ ClientError = (*LauncherNotFoundError)(nil)
	_ ClientError = (*ConnectionError)(nil)
	_ ClientError = (*ProtocolError)(nil)
	_ ClientError = (*ToolNotFoundError)(nil)
	_ ClientError = (*ToolInvocationError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotConnected indicates an operation was attempted before Connect.
	ErrNotConnected = errors.New("not connected to weather server")

	// ErrAlreadyConnected indicates Connect was called on a live session.
	ErrAlreadyConnected = errors.New("already connected to weather server")

	// ErrSessionClosed indicates the session has been closed and cannot be
	// reused. Sessions are single-use; create a new one with NewClient().
	ErrSessionClosed = errors.New("session closed: sessions are single-use, create a new client")
)

// LauncherNotFoundError indicates the server launcher binary was not found.
type LauncherNotFoundError struct {
	Command       string
	SearchedPaths []string
}

func (e *LauncherNotFoundError) Error() string {
	return fmt.Sprintf("launcher %q not found in: %v", e.Command, e.SearchedPaths)
}

// IsWeatherClientError implements ClientError.
func (e *LauncherNotFoundError) IsWeatherClientError() bool { return true }

// ConnectionError indicates the server process could not be spawned or the
// initialize handshake did not complete.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to weather server: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsWeatherClientError implements ClientError.
func (e *ConnectionError) IsWeatherClientError() bool { return true }

// ProtocolError indicates the server sent a response the client cannot use,
// such as a malformed tool listing or a tool result with no content.
type ProtocolError struct {
	Message string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol error: %s: %v", e.Message, e.Err)
	}

	return fmt.Sprintf("protocol error: %s", e.Message)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// IsWeatherClientError implements ClientError.
func (e *ProtocolError) IsWeatherClientError() bool { return true }

// ToolNotFoundError indicates the requested tool is not in the discovered set.
// No request is sent to the server when this error is returned.
type ToolNotFoundError struct {
	Name      string
	Available []string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found, available tools: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// IsWeatherClientError implements ClientError.
func (e *ToolNotFoundError) IsWeatherClientError() bool { return true }

// ToolInvocationError indicates the server reported a tool-execution failure
// or the transport failed mid-call.
type ToolInvocationError struct {
	Tool    string
	Message string
	Err     error
}

func (e *ToolInvocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tool %q invocation failed: %v", e.Tool, e.Err)
	}

	return fmt.Sprintf("tool %q invocation failed: %s", e.Tool, e.Message)
}

func (e *ToolInvocationError) Unwrap() error {
	return e.Err
}

// IsWeatherClientError implements ClientError.
func (e *ToolInvocationError) IsWeatherClientError() bool { return true }
