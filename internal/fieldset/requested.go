package fieldset

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/types"
)

// Discriminated reports whether a type was queried with __typename.
type Discriminated func(typeName string) bool

// Members returns the concrete type names of an interface or union, and
// nil for every other type.
type Members func(typeName string) []string

// Requested returns the field paths sel requests from the target type.
//
// A field contributes its response key under the current path and its
// sub-selection under the extended path, evaluated against the field's own
// type. When that type is abstract, the sub-selection is also evaluated
// against each concrete type under a member segment (see MemberSegment).
// Inline fragments and fragment spreads never extend the path. The
// __typename marker is added at every level whose type is discriminated.
func Requested(
	sel ast.SelectionSet,
	target string,
	fragments FragmentResolver,
	discriminated Discriminated,
	members Members,
) (Set, error) {
	fields, err := Collect(sel, target, fragments)
	if err != nil {
		return nil, err
	}
	r := requester{fragments: fragments, discriminated: discriminated, members: members}
	set := Set{}
	r.addDiscriminator(set, "", target)
	if err := r.walk(set, "", fields); err != nil {
		return nil, err
	}
	return set, nil
}

type requester struct {
	fragments     FragmentResolver
	discriminated Discriminated
	members       Members
}

func (r requester) walk(set Set, path string, fields []Field) error {
	for _, f := range fields {
		p := Join(path, f.Key)
		set.Add(p)
		if len(f.Selection) == 0 {
			continue
		}
		nested := f.NestedType()
		if err := r.nested(set, p, f, nested); err != nil {
			return err
		}
		if r.members == nil || nested == "" {
			continue
		}
		for _, member := range r.members(nested) {
			if err := r.nested(set, Join(p, MemberSegment(member)), f, member); err != nil {
				return err
			}
		}
	}
	return nil
}

// nested adds the paths f's sub-selection requests from typeName under
// path.
func (r requester) nested(set Set, path string, f Field, typeName string) error {
	r.addDiscriminator(set, path, typeName)
	children, err := f.Children(typeName, r.fragments)
	if err != nil {
		return err
	}
	return r.walk(set, path, children)
}

func (r requester) addDiscriminator(set Set, path, typeName string) {
	if r.discriminated != nil && typeName != "" && r.discriminated(typeName) {
		set.Add(Join(path, types.TypenameField))
	}
}
