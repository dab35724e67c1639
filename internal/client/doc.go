// Package client implements the weather server session: subprocess launch,
// MCP handshake, tool discovery, and tool invocation. Protocol framing and
// request correlation are handled by the official MCP Go SDK; this package
// owns session lifecycle and the tool-invocation contract.
package client
