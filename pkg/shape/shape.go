// Package shape turns a schema definition and a selection set into a
// generated artifact: an identifier plus the ordered property layout the
// client code for that type will expose.
//
// Emitters only build artifacts. Registering them, and deciding whether an
// existing artifact can be reused, is the caller's job.
package shape

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/internal/fieldset"
	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/typeref"
)

// Artifact is one generated type.
type Artifact struct {
	// Identifier is the qualified name references use, e.g. "Types.Person2".
	Identifier string
	// Name is the unqualified name, e.g. "Person2".
	Name string
	// TypeName is the schema type the artifact was generated from.
	TypeName string
	// Kind tells how references to the artifact are classified.
	Kind typeref.Kind
	// Properties is the ordered property layout.
	Properties []typeref.Property
	// Members maps each concrete type of an interface or union to the
	// identifier of the member shape generated for it.
	Members map[string]string
	// Values lists enum values in declaration order.
	Values []string
	// AliasOf is the representation a scalar alias stands for.
	AliasOf *typeref.Type
	// Nested holds member shapes generated together with this artifact.
	Nested []*Artifact
}

// Ref returns a nullable reference to the artifact.
func (a *Artifact) Ref() typeref.Type {
	return typeref.Named(a.Kind, a.Identifier)
}

// Options tune one emission.
type Options struct {
	// OverrideName replaces the schema type name as the artifact's local
	// name. It is set only when a new variant of an existing type is
	// emitted.
	OverrideName string
}

// LocalName returns the local name an artifact for typeName gets.
func (o Options) LocalName(typeName string) string {
	if o.OverrideName != "" {
		return o.OverrideName
	}
	return typeName
}

// Resolver is the part of the generation context emitters call back into.
type Resolver interface {
	// ResolveType resolves a field type reference with the sub-selection
	// requested for it.
	ResolveType(ref *ast.Type, selection ast.SelectionSet) (typeref.Type, error)
	// Registry returns the schema registry of the run.
	Registry() schema.Registry
	// Fragments returns the fragment resolver of the query document.
	Fragments() fieldset.FragmentResolver
	// Discriminated reports whether typeName was queried with __typename.
	Discriminated(typeName string) bool
	// Qualify turns a local name into a generated identifier.
	Qualify(local string) string
	// ScalarConverter returns the converter marker bound to a scalar.
	ScalarConverter(name string) (string, bool)
}

// Emitter produces an artifact for one definition kind. Implementations
// must be deterministic.
type Emitter interface {
	Emit(r Resolver, def schema.Definition, selection ast.SelectionSet, opts Options) (*Artifact, error)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(r Resolver, def schema.Definition, selection ast.SelectionSet, opts Options) (*Artifact, error)

// Emit implements Emitter.
func (f EmitterFunc) Emit(
	r Resolver,
	def schema.Definition,
	selection ast.SelectionSet,
	opts Options,
) (*Artifact, error) {
	return f(r, def, selection, opts)
}

// Emitters holds one emitter per definition kind. ScalarAlias serves
// scalars without a converter, Scalar those with one.
type Emitters struct {
	Object      Emitter
	InputObject Emitter
	Enum        Emitter
	Interface   Emitter
	Union       Emitter
	Scalar      Emitter
	ScalarAlias Emitter
}

// DefaultEmitters returns the emitters used when none are configured.
func DefaultEmitters() Emitters {
	return Emitters{
		Object:      EmitterFunc(EmitObject),
		InputObject: EmitterFunc(EmitInputObject),
		Enum:        EmitterFunc(EmitEnum),
		Interface:   EmitterFunc(EmitInterface),
		Union:       EmitterFunc(EmitUnion),
		Scalar:      EmitterFunc(EmitConvertedScalar),
		ScalarAlias: EmitterFunc(EmitScalarAlias),
	}
}

// WithDefaults fills unset emitters with the defaults.
func (e Emitters) WithDefaults() Emitters {
	d := DefaultEmitters()
	if e.Object == nil {
		e.Object = d.Object
	}
	if e.InputObject == nil {
		e.InputObject = d.InputObject
	}
	if e.Enum == nil {
		e.Enum = d.Enum
	}
	if e.Interface == nil {
		e.Interface = d.Interface
	}
	if e.Union == nil {
		e.Union = d.Union
	}
	if e.Scalar == nil {
		e.Scalar = d.Scalar
	}
	if e.ScalarAlias == nil {
		e.ScalarAlias = d.ScalarAlias
	}
	return e
}
