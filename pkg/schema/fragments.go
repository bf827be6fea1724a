package schema

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// ErrFragmentNotFound is returned when a fragment spread names a fragment
// the query document does not define.
var ErrFragmentNotFound = errors.New("fragment not found")

// Fragments resolves fragment spreads of one query document.
type Fragments struct {
	doc      *ast.QueryDocument
	registry Registry
}

// NewFragments returns a resolver over the fragments of doc. The document
// is expected to be validated against the schema behind registry.
func NewFragments(doc *ast.QueryDocument, registry Registry) *Fragments {
	return &Fragments{doc: doc, registry: registry}
}

// Resolve returns the fragment definition named name for a spread
// evaluated against the target type.
func (f *Fragments) Resolve(name, target string) (*ast.FragmentDefinition, error) {
	if f == nil || f.doc == nil {
		return nil, fmt.Errorf("%w: %s on %s", ErrFragmentNotFound, name, target)
	}
	frag := f.doc.Fragments.ForName(name)
	if frag == nil {
		return nil, fmt.Errorf("%w: %s on %s", ErrFragmentNotFound, name, target)
	}
	return frag, nil
}

// Applies reports whether a fragment with the given type condition
// contributes to a selection evaluated against target: the condition names
// target itself, or an abstract type target is a possible type of.
func (f *Fragments) Applies(typeCondition, target string) bool {
	if typeCondition == "" || typeCondition == target {
		return true
	}
	if f == nil || f.registry == nil {
		return false
	}
	for _, name := range PossibleTypeNames(f.registry, typeCondition) {
		if name == target {
			return true
		}
	}
	return false
}

// ErrUnknownField is returned when a selected field carries no schema
// definition, which happens only for documents that were not validated.
var ErrUnknownField = errors.New("field has no schema definition")
