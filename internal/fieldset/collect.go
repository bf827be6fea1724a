package fieldset

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/types"
)

// ErrFragmentCycle is returned when a fragment spread is reached again
// from inside its own selection.
var ErrFragmentCycle = errors.New("fragment spreads form a cycle")

// FragmentResolver resolves fragment spreads against a target type.
type FragmentResolver interface {
	// Resolve returns the fragment definition a spread of name refers to.
	Resolve(name, target string) (*ast.FragmentDefinition, error)
	// Applies reports whether a fragment with the given type condition
	// contributes to a selection evaluated against target.
	Applies(typeCondition, target string) bool
}

// Field is one response key of a selection set, with every sub-selection
// requested under that key merged together.
type Field struct {
	Key       string
	Field     *ast.Field
	Selection ast.SelectionSet

	parts []part
}

// part is a sub-selection together with the fragment spreads that were
// being expanded when it was reached.
type part struct {
	sel    ast.SelectionSet
	active []string
}

// NestedType returns the named type the field's sub-selection applies to,
// or "" when the field carries no schema definition.
func (f Field) NestedType() string {
	if f.Field == nil || f.Field.Definition == nil || f.Field.Definition.Type == nil {
		return ""
	}
	return f.Field.Definition.Type.Name()
}

// Collect flattens sel for the target type: inline fragments are expanded
// when their type condition equals target, fragment spreads when their
// fragment applies to target. Fields are returned in first-seen order;
// __typename selections are left out since they are tracked as
// discriminators.
func Collect(sel ast.SelectionSet, target string, fragments FragmentResolver) ([]Field, error) {
	return collect([]part{{sel: sel}}, target, fragments)
}

// Children collects the merged sub-selection of f against target. Fragment
// cycles spanning several nesting levels are detected.
func (f Field) Children(target string, fragments FragmentResolver) ([]Field, error) {
	return collect(f.parts, target, fragments)
}

func collect(parts []part, target string, fragments FragmentResolver) ([]Field, error) {
	c := collector{target: target, fragments: fragments, index: map[string]int{}}
	for _, p := range parts {
		if err := c.walk(p.sel, p.active); err != nil {
			return nil, err
		}
	}
	return c.fields, nil
}

type collector struct {
	target    string
	fragments FragmentResolver
	fields    []Field
	index     map[string]int
}

func (c *collector) walk(sel ast.SelectionSet, active []string) error {
	for _, s := range sel {
		switch s := s.(type) {
		case *ast.Field:
			c.add(s, active)
		case *ast.InlineFragment:
			if s.TypeCondition != "" && s.TypeCondition != c.target {
				continue
			}
			if err := c.walk(s.SelectionSet, active); err != nil {
				return err
			}
		case *ast.FragmentSpread:
			frag, err := resolveSpread(c.fragments, s.Name, c.target, active)
			if err != nil {
				return err
			}
			if frag == nil {
				continue
			}
			next := append(append([]string(nil), active...), s.Name)
			if err := c.walk(frag.SelectionSet, next); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *collector) add(f *ast.Field, active []string) {
	if f.Name == types.TypenameField {
		return
	}
	key := ResponseKey(f)
	p := part{sel: f.SelectionSet, active: active}
	if i, ok := c.index[key]; ok {
		c.fields[i].Selection = append(c.fields[i].Selection, f.SelectionSet...)
		c.fields[i].parts = append(c.fields[i].parts, p)
		return
	}
	c.index[key] = len(c.fields)
	sub := make(ast.SelectionSet, len(f.SelectionSet))
	copy(sub, f.SelectionSet)
	c.fields = append(c.fields, Field{Key: key, Field: f, Selection: sub, parts: []part{p}})
}

// resolveSpread returns the fragment a spread refers to, or nil when the
// fragment does not apply to target.
func resolveSpread(
	fragments FragmentResolver,
	name string,
	target string,
	active []string,
) (*ast.FragmentDefinition, error) {
	for _, a := range active {
		if a == name {
			return nil, fmt.Errorf("%w: %s", ErrFragmentCycle, name)
		}
	}
	if fragments == nil {
		return nil, fmt.Errorf("%w: %s on %s", schema.ErrFragmentNotFound, name, target)
	}
	frag, err := fragments.Resolve(name, target)
	if err != nil {
		return nil, err
	}
	if !fragments.Applies(frag.TypeCondition, target) {
		return nil, nil
	}
	return frag, nil
}

// ResponseKey returns the key a field is returned under: its alias when
// present, its name otherwise.
func ResponseKey(f *ast.Field) string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}
