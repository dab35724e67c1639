// Package errors defines error types for the weather MCP client.
//
// This package provides structured error types that wrap different failure
// scenarios when talking to the weather server subprocess. All error types
// support error unwrapping and can be checked using errors.Is and errors.As.
package errors
