package weathermcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Transport is the bidirectional channel carrying MCP messages between the
// client and the weather server. The default transport spawns the server
// subprocess and speaks over its standard input/output; inject a custom one
// with WithTransport for tests or in-process servers.
//
// This is the official MCP Go SDK transport interface; anything accepted by
// the SDK (command, in-memory, streamable HTTP) can be used here.
type Transport = mcp.Transport
