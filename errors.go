package weathermcp

import "github.com/Zero-Hero-ing/mcp-interaction/internal/errors"

// Re-export error types from internal package

// LauncherNotFoundError indicates the server launcher binary was not found.
type LauncherNotFoundError = errors.LauncherNotFoundError

// ConnectionError indicates the server process could not be spawned or the
// initialize handshake did not complete.
type ConnectionError = errors.ConnectionError

// ProtocolError indicates the server sent a response the client cannot use.
type ProtocolError = errors.ProtocolError

// ToolNotFoundError indicates the requested tool is not in the discovered set.
type ToolNotFoundError = errors.ToolNotFoundError

// ToolInvocationError indicates a tool-execution or mid-call transport failure.
type ToolInvocationError = errors.ToolInvocationError

// ClientError is the base interface for all weather client errors.
type ClientError = errors.ClientError

// Re-export sentinel errors from internal package.
var (
	// ErrNotConnected indicates an operation was attempted before Connect.
	ErrNotConnected = errors.ErrNotConnected

	// ErrAlreadyConnected indicates Connect was called on a live session.
	ErrAlreadyConnected = errors.ErrAlreadyConnected

	// ErrSessionClosed indicates the client has been closed and cannot be reused.
	ErrSessionClosed = errors.ErrSessionClosed
)
