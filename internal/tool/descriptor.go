// Package tool defines the descriptor type for tools discovered on the
// weather server.
package tool

import "github.com/google/jsonschema-go/jsonschema"

// Descriptor is an immutable description of one remote tool. Descriptors are
// discovered from the server's tool listing, never constructed by callers.
type Descriptor struct {
	// Name is the unique identifier used for invocation.
	Name string

	// Description is free text supplied by the server.
	Description string

	// InputSchema describes the expected argument shape, if the server
	// published one.
	InputSchema *jsonschema.Schema
}
