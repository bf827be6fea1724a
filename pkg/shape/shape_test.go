package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/internal/fieldset"
	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/typeref"
)

const testSchema = `
type Query {
	person: Person
	search: [SearchResult!]!
	node: Node
}

type Person { name: String! age: Int }
interface Node { id: ID! }
type User implements Node { id: ID! login: String! }
type Bot implements Node { id: ID! handle: String! }
union SearchResult = User | Bot
enum Color { RED GREEN }
scalar Time
input Filter { name: String! color: Color }
`

// fakeResolver resolves every field to a generated reference named after
// the field's base type.
type fakeResolver struct {
	registry      *schema.Schema
	fragments     fieldset.FragmentResolver
	discriminated map[string]bool
	scalars       map[string]string
	resolved      []string
}

func (f *fakeResolver) ResolveType(ref *ast.Type, _ ast.SelectionSet) (typeref.Type, error) {
	f.resolved = append(f.resolved, ref.Name())
	t := typeref.Named(typeref.KindComposite, f.Qualify(ref.Name()))
	return t.WithNullable(!ref.NonNull), nil
}

func (f *fakeResolver) Registry() schema.Registry            { return f.registry }
func (f *fakeResolver) Fragments() fieldset.FragmentResolver { return f.fragments }
func (f *fakeResolver) Discriminated(name string) bool       { return f.discriminated[name] }
func (f *fakeResolver) Qualify(local string) string          { return "T." + local }

func (f *fakeResolver) ScalarConverter(name string) (string, bool) {
	marker, ok := f.scalars[name]
	return marker, ok
}

func setup(t *testing.T, query string) (*fakeResolver, ast.SelectionSet) {
	t.Helper()
	s, err := schema.Load(&ast.Source{Name: "schema.graphql", Input: testSchema})
	require.NoError(t, err)
	r := &fakeResolver{registry: s, discriminated: map[string]bool{}}
	if query == "" {
		return r, nil
	}
	doc, err := schema.LoadQuery(s, query)
	require.NoError(t, err)
	r.fragments = schema.NewFragments(doc, s)
	field := doc.Operations[0].SelectionSet[0].(*ast.Field)
	return r, field.SelectionSet
}

func definition(t *testing.T, r *fakeResolver, name string) schema.Definition {
	t.Helper()
	def, ok := r.registry.Type(name)
	require.True(t, ok, name)
	return def
}

func names(props []typeref.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Name)
	}
	return out
}

func TestEmitObject(t *testing.T) {
	r, sel := setup(t, `{ person { age years: age name } }`)

	a, err := EmitObject(r, definition(t, r, "Person"), sel, Options{})
	require.NoError(t, err)
	assert.Equal(t, "T.Person", a.Identifier)
	assert.Equal(t, "Person", a.Name)
	assert.Equal(t, "Person", a.TypeName)
	assert.Equal(t, typeref.KindComposite, a.Kind)
	assert.Equal(t, []string{"age", "years", "name"}, names(a.Properties))
	assert.Equal(t, "T.Int?", a.Properties[0].Type.String())
	assert.Equal(t, "T.String", a.Properties[2].Type.String())
	assert.Equal(t, "T.Person?", a.Ref().String())
}

func TestEmitObject_OverrideAndDiscriminator(t *testing.T) {
	r, sel := setup(t, `{ person { __typename name } }`)
	r.discriminated["Person"] = true

	a, err := EmitObject(r, definition(t, r, "Person"), sel, Options{OverrideName: "Person2"})
	require.NoError(t, err)
	assert.Equal(t, "T.Person2", a.Identifier)
	assert.Equal(t, "Person2", a.Name)
	assert.Equal(t, []string{"__typename", "name"}, names(a.Properties))
	assert.Equal(t, "string", a.Properties[0].Type.String())
}

func TestEmitObject_UnknownField(t *testing.T) {
	r, _ := setup(t, "")
	sel := ast.SelectionSet{&ast.Field{Alias: "ghost", Name: "ghost"}}

	_, err := EmitObject(r, definition(t, r, "Person"), sel, Options{})
	require.ErrorIs(t, err, schema.ErrUnknownField)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Person", fe.TypeName)
	assert.Equal(t, "ghost", fe.Key)
	assert.Equal(t, "field Person.ghost: field has no schema definition", err.Error())
}

func TestEmitInterface(t *testing.T) {
	r, sel := setup(t, `{ node { id ... on User { login } } }`)

	a, err := EmitInterface(r, definition(t, r, "Node"), sel, Options{OverrideName: "Node2"})
	require.NoError(t, err)
	assert.Equal(t, "T.Node2", a.Identifier)
	assert.Equal(t, []string{"id"}, names(a.Properties))
	assert.Equal(t, map[string]string{"Bot": "T.Node2_Bot", "User": "T.Node2_User"}, a.Members)

	require.Len(t, a.Nested, 2)
	assert.Equal(t, "Bot", a.Nested[0].TypeName)
	assert.Equal(t, []string{"id"}, names(a.Nested[0].Properties))
	assert.Equal(t, "User", a.Nested[1].TypeName)
	assert.Equal(t, []string{"id", "login"}, names(a.Nested[1].Properties))

	_, err = EmitInterface(r, definition(t, r, "Person"), sel, Options{})
	assert.Error(t, err)
}

func TestEmitUnion(t *testing.T) {
	r, sel := setup(t, `{ search { __typename ... on Bot { handle } } }`)
	r.discriminated["SearchResult"] = true

	a, err := EmitUnion(r, definition(t, r, "SearchResult"), sel, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"__typename"}, names(a.Properties))

	require.Len(t, a.Nested, 2)
	assert.Equal(t, "T.SearchResult_User", a.Nested[0].Identifier)
	assert.Empty(t, a.Nested[0].Properties)
	assert.Equal(t, "T.SearchResult_Bot", a.Nested[1].Identifier)
	assert.Equal(t, []string{"handle"}, names(a.Nested[1].Properties))
}

func TestEmitInputObject(t *testing.T) {
	r, _ := setup(t, "")

	a, err := EmitInputObject(r, definition(t, r, "Filter"), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "T.Filter", a.Identifier)
	assert.Equal(t, []string{"name", "color"}, names(a.Properties))
	assert.Equal(t, []string{"String", "Color"}, r.resolved)
}

func TestEmitEnum(t *testing.T) {
	r, _ := setup(t, "")

	a, err := EmitEnum(r, definition(t, r, "Color"), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "T.Color", a.Identifier)
	assert.Equal(t, typeref.KindEnum, a.Kind)
	assert.Equal(t, []string{"RED", "GREEN"}, a.Values)
}

func TestEmitScalars(t *testing.T) {
	r, _ := setup(t, "")
	def := definition(t, r, "Time")

	alias, err := EmitScalarAlias(r, def, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "T.Time", alias.Identifier)
	assert.Equal(t, typeref.KindScalar, alias.Kind)
	require.NotNil(t, alias.AliasOf)
	assert.Equal(t, "string?", alias.AliasOf.String())

	_, err = EmitConvertedScalar(r, def, nil, Options{})
	assert.Error(t, err)

	r.scalars = map[string]string{"Time": "time.Time"}
	converted, err := EmitConvertedScalar(r, def, nil, Options{OverrideName: "Ignored"})
	require.NoError(t, err)
	assert.Equal(t, "time.Time", converted.Identifier)
	assert.Nil(t, converted.AliasOf)
}

func TestEmitters_WithDefaults(t *testing.T) {
	called := false
	custom := EmitterFunc(func(r Resolver, def schema.Definition, sel ast.SelectionSet, opts Options) (*Artifact, error) {
		called = true
		return EmitEnum(r, def, sel, opts)
	})

	e := Emitters{Enum: custom}.WithDefaults()
	for _, em := range []Emitter{e.Object, e.InputObject, e.Interface, e.Union, e.Scalar, e.ScalarAlias} {
		assert.NotNil(t, em)
	}

	r, _ := setup(t, "")
	_, err := e.Enum.Emit(r, definition(t, r, "Color"), nil, Options{})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestOptions_LocalName(t *testing.T) {
	assert.Equal(t, "Person", Options{}.LocalName("Person"))
	assert.Equal(t, "Person3", Options{OverrideName: "Person3"}.LocalName("Person"))
}
