// Package typeref describes generated target-type representations: what a
// schema type reference becomes once wrapper types are unwrapped and named
// types are resolved to generated identifiers.
package typeref

import (
	"strings"

	"github.com/llehouerou/go-graphql-typegen/types"
)

// Kind classifies a target-type representation.
type Kind uint8

const (
	// KindPrimitive is one of the built-in primitives (string, int, float,
	// bool).
	KindPrimitive Kind = iota
	// KindScalar is a scalar alias or a converter-bound custom scalar.
	KindScalar
	// KindEnum is a generated enumeration.
	KindEnum
	// KindComposite is a generated shape with properties: object,
	// interface, union or input object.
	KindComposite
	// KindSequence is a list container around an element type.
	KindSequence
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindScalar:
		return "scalar"
	case KindEnum:
		return "enum"
	case KindComposite:
		return "composite"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Primitive names used by built-in scalars.
const (
	PrimitiveString = "string"
	PrimitiveInt    = "int"
	PrimitiveFloat  = "float"
	PrimitiveBool   = "bool"
)

var builtins = map[string]string{
	types.StringScalar:  PrimitiveString,
	types.IntScalar:     PrimitiveInt,
	types.FloatScalar:   PrimitiveFloat,
	types.BooleanScalar: PrimitiveBool,
}

// BuiltinPrimitive returns the primitive a built-in GraphQL scalar maps to.
// ID is not built in: it resolves like any other schema scalar.
func BuiltinPrimitive(scalar string) (string, bool) {
	p, ok := builtins[scalar]
	return p, ok
}

// Type is a resolved target-type representation. Values are immutable;
// the With* helpers return modified copies.
type Type struct {
	Kind     Kind
	Name     string // identifier for named kinds, primitive name for KindPrimitive
	Elem     *Type  // element type for KindSequence
	Nullable bool
}

// Primitive returns a nullable primitive representation.
func Primitive(name string) Type {
	return Type{Kind: KindPrimitive, Name: name, Nullable: true}
}

// Named returns a nullable representation of a generated identifier.
func Named(kind Kind, identifier string) Type {
	return Type{Kind: kind, Name: identifier, Nullable: true}
}

// Sequence returns a nullable sequence of elem.
func Sequence(elem Type) Type {
	return Type{Kind: KindSequence, Elem: &elem, Nullable: true}
}

// WithNullable returns a copy of t with its own nullability set. Nested
// element types are untouched.
func (t Type) WithNullable(nullable bool) Type {
	t.Nullable = nullable
	return t
}

// IsSequence reports whether t is a list container.
func (t Type) IsSequence() bool {
	return t.Kind == KindSequence
}

// Innermost returns the element type found after unwrapping every
// sequence layer.
func (t Type) Innermost() Type {
	for t.Kind == KindSequence && t.Elem != nil {
		t = *t.Elem
	}
	return t
}

// Depth returns the number of sequence layers around the innermost type.
func (t Type) Depth() int {
	depth := 0
	for t.Kind == KindSequence && t.Elem != nil {
		depth++
		t = *t.Elem
	}
	return depth
}

// IsComposite reports whether t, directly or as the element of any number
// of sequence layers, refers to a generated shape with properties.
func (t Type) IsComposite() bool {
	return t.Innermost().Kind == KindComposite
}

// String renders t in a compact, language-neutral notation: list layers in
// brackets and a trailing "?" on nullable positions, e.g. "[Types.Person?]".
func (t Type) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t Type) write(b *strings.Builder) {
	if t.Kind == KindSequence {
		b.WriteString("[")
		if t.Elem != nil {
			t.Elem.write(b)
		}
		b.WriteString("]")
	} else {
		b.WriteString(t.Name)
	}
	if t.Nullable {
		b.WriteString("?")
	}
}

// Equal reports whether t and o describe the same representation.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Name != o.Name || t.Nullable != o.Nullable {
		return false
	}
	if t.Elem == nil || o.Elem == nil {
		return t.Elem == o.Elem
	}
	return t.Elem.Equal(*o.Elem)
}

// Property is one named, typed member of a generated shape's layout.
type Property struct {
	Name string
	Type Type
}
