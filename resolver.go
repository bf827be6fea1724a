package typegen

import (
	"errors"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/typeref"
)

// ResolveType unwraps the non-null and list wrappers of ref and resolves
// its named base type under selection.
//
// E.g., [Person!] -> [Types.Person]? with non-nullable elements.
func (c *Context) ResolveType(ref *ast.Type, selection ast.SelectionSet) (typeref.Type, error) {
	switch {
	case ref == nil:
		return typeref.Type{}, newError(ErrUnknownSchemaType, "", errors.New("nil type reference"))
	case ref.NonNull:
		inner := *ref
		inner.NonNull = false
		t, err := c.ResolveType(&inner, selection)
		if err != nil {
			return typeref.Type{}, err
		}
		return t.WithNullable(false), nil
	case ref.Elem != nil:
		elem, err := c.ResolveType(ref.Elem, selection)
		if err != nil {
			return typeref.Type{}, err
		}
		return typeref.Sequence(elem), nil
	case ref.NamedType != "":
		if p, ok := typeref.BuiltinPrimitive(ref.NamedType); ok {
			return typeref.Primitive(p), nil
		}
		return c.resolveCustom(ref.NamedType, selection)
	default:
		return typeref.Type{}, newError(
			ErrUnknownSchemaType,
			"",
			errors.New("type reference is neither wrapped nor named"),
		)
	}
}

func (c *Context) resolveCustom(name string, selection ast.SelectionSet) (typeref.Type, error) {
	id, err := c.ResolveNamed(name, selection)
	if err != nil {
		return typeref.Type{}, err
	}
	def, _ := c.registry.Type(name)
	kind, err := schema.Visit[typeref.Kind](def, refKind{})
	if err != nil {
		return typeref.Type{}, newError(ErrUnknownSchemaType, name, err)
	}
	return typeref.Named(kind, id), nil
}

// refKind classifies references to a definition.
type refKind struct{}

func (refKind) VisitScalar(*schema.Scalar) (typeref.Kind, error) {
	return typeref.KindScalar, nil
}

func (refKind) VisitObject(*schema.Object) (typeref.Kind, error) {
	return typeref.KindComposite, nil
}

func (refKind) VisitInputObject(*schema.InputObject) (typeref.Kind, error) {
	return typeref.KindComposite, nil
}

func (refKind) VisitEnum(*schema.Enum) (typeref.Kind, error) {
	return typeref.KindEnum, nil
}

func (refKind) VisitInterface(*schema.Interface) (typeref.Kind, error) {
	return typeref.KindComposite, nil
}

func (refKind) VisitUnion(*schema.Union) (typeref.Kind, error) {
	return typeref.KindComposite, nil
}
