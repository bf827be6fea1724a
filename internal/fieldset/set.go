// Package fieldset computes comparable sets of dotted field paths: one from
// a requested selection tree, one from an already-generated property
// layout. Two shapes are equivalent when both sets are equal.
package fieldset

import (
	"sort"
	"strings"

	"github.com/llehouerou/go-graphql-typegen/types"
)

// Set is an unordered set of dotted field paths.
type Set map[string]struct{}

// New returns a set holding paths.
func New(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts path.
func (s Set) Add(path string) {
	s[path] = struct{}{}
}

// Has reports whether path is present.
func (s Set) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Equal reports whether s and o hold exactly the same paths.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the paths in lexical order.
func (s Set) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// String returns the sorted paths joined with commas, e.g. "age,name".
func (s Set) String() string {
	return strings.Join(s.Sorted(), ",")
}

// Join extends a dotted path with one segment.
func Join(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + types.PathSeparator + segment
}

// MemberSegment returns the path segment under which the fields selected
// on one concrete type of an abstract field are recorded, e.g.
// "search.<Bot>.handle". Field names cannot contain angle brackets.
func MemberSegment(typeName string) string {
	return "<" + typeName + ">"
}
