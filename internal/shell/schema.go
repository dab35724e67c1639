package shell

import (
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// schemaSummary renders the property names of a tool input schema as a
// short, sorted list for the tools listing.
func schemaSummary(s *jsonschema.Schema) string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}

	sort.Strings(names)

	return strings.Join(names, ", ")
}
