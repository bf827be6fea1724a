package typegen

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/internal/fieldset"
	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
)

// compatible reports whether the variant generated under the local name
// has exactly the shape selection requests from def.
func (c *Context) compatible(local string, def schema.Definition, selection ast.SelectionSet) (bool, error) {
	return schema.Visit[bool](def, compatibility{
		c:          c,
		identifier: c.Qualify(local),
		selection:  selection,
	})
}

type compatibility struct {
	c          *Context
	identifier string
	selection  ast.SelectionSet
}

// Selections have no meaning for scalars, enums and input objects.

func (compatibility) VisitScalar(*schema.Scalar) (bool, error)           { return true, nil }
func (compatibility) VisitEnum(*schema.Enum) (bool, error)               { return true, nil }
func (compatibility) VisitInputObject(*schema.InputObject) (bool, error) { return true, nil }

func (k compatibility) VisitObject(d *schema.Object) (bool, error) {
	return k.matches(k.identifier, d.TypeName())
}

func (k compatibility) VisitInterface(d *schema.Interface) (bool, error) {
	ok, err := k.matches(k.identifier, d.TypeName())
	if err != nil || !ok {
		return false, err
	}
	return k.membersMatch(k.c.registry.ImplementationsOf(d))
}

// Unions contribute no fields of their own: only members are compared.
func (k compatibility) VisitUnion(d *schema.Union) (bool, error) {
	return k.membersMatch(k.c.registry.PossibleTypes(d))
}

func (k compatibility) membersMatch(members []*schema.Object) (bool, error) {
	a, ok := k.c.shapes[k.identifier]
	if !ok {
		return false, nil
	}
	for _, member := range members {
		id, ok := a.Members[member.TypeName()]
		if !ok {
			return false, nil
		}
		ok, err := k.matches(id, member.TypeName())
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// matches compares the field paths requested from typeName with the ones
// generated under identifier.
func (k compatibility) matches(identifier, typeName string) (bool, error) {
	l, ok := k.c.layout(identifier)
	if !ok {
		return false, nil
	}
	requested, err := fieldset.Requested(
		k.selection,
		typeName,
		k.c.fragments,
		k.c.Discriminated,
		k.c.abstractMembers,
	)
	if err != nil {
		return false, err
	}
	return requested.Equal(fieldset.Generated(l.Properties, k.c.layout)), nil
}
