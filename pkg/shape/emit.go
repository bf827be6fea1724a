package shape

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/internal/fieldset"
	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/typeref"
	"github.com/llehouerou/go-graphql-typegen/types"
)

// MemberSeparator joins an abstract type's variant name and a concrete
// type name into a member shape name, e.g. "SearchResult2_User".
const MemberSeparator = "_"

// FieldError reports the field of typeName whose type could not be
// resolved. Key is the field's response key.
type FieldError struct {
	TypeName string
	Key      string
	Err      error
}

// Error implements error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s.%s: %v", e.TypeName, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// EmitObject emits the shape of an object type: one property per selected
// response key, preceded by a discriminator when the type is queried with
// __typename.
func EmitObject(
	r Resolver,
	def schema.Definition,
	selection ast.SelectionSet,
	opts Options,
) (*Artifact, error) {
	local := opts.LocalName(def.TypeName())
	props, err := selectedProperties(r, selection, def.TypeName())
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Identifier: r.Qualify(local),
		Name:       local,
		TypeName:   def.TypeName(),
		Kind:       typeref.KindComposite,
		Properties: props,
	}, nil
}

// EmitInterface emits an interface shape holding the fields selected on
// the interface itself, plus one member shape per implementing object.
func EmitInterface(
	r Resolver,
	def schema.Definition,
	selection ast.SelectionSet,
	opts Options,
) (*Artifact, error) {
	iface, ok := def.(*schema.Interface)
	if !ok {
		return nil, fmt.Errorf("interface emitter called for %s", def.TypeName())
	}
	return emitAbstract(r, def, selection, opts, r.Registry().ImplementationsOf(iface))
}

// EmitUnion emits a union shape. Unions carry no fields of their own
// besides the discriminator; each member type gets a member shape.
func EmitUnion(
	r Resolver,
	def schema.Definition,
	selection ast.SelectionSet,
	opts Options,
) (*Artifact, error) {
	union, ok := def.(*schema.Union)
	if !ok {
		return nil, fmt.Errorf("union emitter called for %s", def.TypeName())
	}
	return emitAbstract(r, def, selection, opts, r.Registry().PossibleTypes(union))
}

func emitAbstract(
	r Resolver,
	def schema.Definition,
	selection ast.SelectionSet,
	opts Options,
	members []*schema.Object,
) (*Artifact, error) {
	a, err := EmitObject(r, def, selection, opts)
	if err != nil {
		return nil, err
	}
	a.Members = make(map[string]string, len(members))
	for _, member := range members {
		local := a.Name + MemberSeparator + member.TypeName()
		props, err := selectedProperties(r, selection, member.TypeName())
		if err != nil {
			return nil, err
		}
		m := &Artifact{
			Identifier: r.Qualify(local),
			Name:       local,
			TypeName:   member.TypeName(),
			Kind:       typeref.KindComposite,
			Properties: props,
		}
		a.Members[member.TypeName()] = m.Identifier
		a.Nested = append(a.Nested, m)
	}
	return a, nil
}

// EmitInputObject emits an input object with every declared input field.
// Selections do not apply to input types.
func EmitInputObject(
	r Resolver,
	def schema.Definition,
	_ ast.SelectionSet,
	opts Options,
) (*Artifact, error) {
	local := opts.LocalName(def.TypeName())
	props := make([]typeref.Property, 0, len(def.AST().Fields))
	for _, field := range def.AST().Fields {
		t, err := r.ResolveType(field.Type, nil)
		if err != nil {
			return nil, &FieldError{TypeName: def.TypeName(), Key: field.Name, Err: err}
		}
		props = append(props, typeref.Property{Name: field.Name, Type: t})
	}
	return &Artifact{
		Identifier: r.Qualify(local),
		Name:       local,
		TypeName:   def.TypeName(),
		Kind:       typeref.KindComposite,
		Properties: props,
	}, nil
}

// EmitEnum emits an enumeration with its values in declaration order.
func EmitEnum(
	r Resolver,
	def schema.Definition,
	_ ast.SelectionSet,
	opts Options,
) (*Artifact, error) {
	local := opts.LocalName(def.TypeName())
	values := make([]string, 0, len(def.AST().EnumValues))
	for _, v := range def.AST().EnumValues {
		values = append(values, v.Name)
	}
	return &Artifact{
		Identifier: r.Qualify(local),
		Name:       local,
		TypeName:   def.TypeName(),
		Kind:       typeref.KindEnum,
		Values:     values,
	}, nil
}

// EmitScalarAlias emits an alias for a scalar no converter is bound to.
// Its values travel as strings.
func EmitScalarAlias(
	r Resolver,
	def schema.Definition,
	_ ast.SelectionSet,
	opts Options,
) (*Artifact, error) {
	local := opts.LocalName(def.TypeName())
	alias := typeref.Primitive(typeref.PrimitiveString)
	return &Artifact{
		Identifier: r.Qualify(local),
		Name:       local,
		TypeName:   def.TypeName(),
		Kind:       typeref.KindScalar,
		AliasOf:    &alias,
	}, nil
}

// EmitConvertedScalar emits the artifact of a scalar bound to an external
// converter. The converter marker is used verbatim as identifier.
func EmitConvertedScalar(
	r Resolver,
	def schema.Definition,
	_ ast.SelectionSet,
	_ Options,
) (*Artifact, error) {
	marker, ok := r.ScalarConverter(def.TypeName())
	if !ok {
		return nil, fmt.Errorf("no converter bound to scalar %s", def.TypeName())
	}
	return &Artifact{
		Identifier: marker,
		Name:       def.TypeName(),
		TypeName:   def.TypeName(),
		Kind:       typeref.KindScalar,
	}, nil
}

// selectedProperties resolves the properties selection requests from
// typeName.
func selectedProperties(
	r Resolver,
	selection ast.SelectionSet,
	typeName string,
) ([]typeref.Property, error) {
	var props []typeref.Property
	if r.Discriminated(typeName) {
		props = append(props, typeref.Property{
			Name: types.TypenameField,
			Type: typeref.Primitive(typeref.PrimitiveString).WithNullable(false),
		})
	}
	fields, err := fieldset.Collect(selection, typeName, r.Fragments())
	if err != nil {
		return nil, fmt.Errorf("selection on %s: %w", typeName, err)
	}
	for _, f := range fields {
		if f.Field.Definition == nil {
			return nil, &FieldError{TypeName: typeName, Key: f.Key, Err: schema.ErrUnknownField}
		}
		var sub ast.SelectionSet
		if len(f.Selection) > 0 {
			sub = f.Selection
		}
		t, err := r.ResolveType(f.Field.Definition.Type, sub)
		if err != nil {
			return nil, &FieldError{TypeName: typeName, Key: f.Key, Err: err}
		}
		props = append(props, typeref.Property{Name: f.Key, Type: t})
	}
	return props, nil
}
