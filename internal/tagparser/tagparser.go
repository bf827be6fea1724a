// Package tagparser parses scalar bindings: short "Scalar: marker" strings
// binding a GraphQL scalar to an externally supplied converter type.
package tagparser

import (
	"fmt"
	"strings"

	"github.com/llehouerou/go-graphql-typegen/pkg/typeref"
	"github.com/llehouerou/go-graphql-typegen/types"
)

// ScalarBinding represents a parsed scalar binding.
type ScalarBinding struct {
	// Scalar is the GraphQL scalar name.
	Scalar string
	// Marker is the converter marker generated code uses for the scalar,
	// typically a qualified type name.
	Marker string
}

// ParseScalarBinding parses a scalar binding and returns structured information.
// Examples:
//   - "DateTime: time.Time" -> {Scalar: "DateTime", Marker: "time.Time"}
//   - "URI:net/url.URL" -> {Scalar: "URI", Marker: "net/url.URL"}
//   - "Upload: github.com/acme/gql.Upload" -> {Scalar: "Upload", Marker: "github.com/acme/gql.Upload"}
func ParseScalarBinding(binding string) (ScalarBinding, error) {
	binding = strings.TrimSpace(binding)

	var parsed ScalarBinding

	// Only the first separator splits: markers may contain colons
	sepIdx := strings.Index(binding, types.ScalarBindingSeparator)
	if sepIdx == -1 {
		return parsed, fmt.Errorf("scalar binding %q: missing %q separator", binding, types.ScalarBindingSeparator)
	}

	parsed.Scalar = strings.TrimSpace(binding[:sepIdx])
	parsed.Marker = strings.TrimSpace(binding[sepIdx+1:])

	if !isName(parsed.Scalar) {
		return ScalarBinding{}, fmt.Errorf("scalar binding %q: invalid scalar name %q", binding, parsed.Scalar)
	}
	if parsed.Marker == "" {
		return ScalarBinding{}, fmt.Errorf("scalar binding %q: empty marker", binding)
	}
	if _, builtin := typeref.BuiltinPrimitive(parsed.Scalar); builtin {
		return ScalarBinding{}, fmt.Errorf("scalar binding %q: %s is a built-in scalar", binding, parsed.Scalar)
	}

	return parsed, nil
}

// ParseScalarBindings parses every binding and returns the scalar to marker
// mapping. A scalar may be bound only once.
func ParseScalarBindings(bindings []string) (map[string]string, error) {
	out := make(map[string]string, len(bindings))
	for _, b := range bindings {
		parsed, err := ParseScalarBinding(b)
		if err != nil {
			return nil, err
		}
		if prev, ok := out[parsed.Scalar]; ok {
			return nil, fmt.Errorf("scalar %s bound twice: %s and %s", parsed.Scalar, prev, parsed.Marker)
		}
		out[parsed.Scalar] = parsed.Marker
	}
	return out, nil
}

// isName reports whether s is a valid GraphQL name: /[_A-Za-z][_0-9A-Za-z]*/.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
