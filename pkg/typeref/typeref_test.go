package typeref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_String(t *testing.T) {
	person := Named(KindComposite, "Types.Person")

	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{name: "nullable primitive", typ: Primitive(PrimitiveString), want: "string?"},
		{name: "non-null primitive", typ: Primitive(PrimitiveInt).WithNullable(false), want: "int"},
		{name: "named", typ: person, want: "Types.Person?"},
		{name: "sequence", typ: Sequence(person), want: "[Types.Person?]?"},
		{
			name: "non-null sequence of non-null",
			typ:  Sequence(person.WithNullable(false)).WithNullable(false),
			want: "[Types.Person]",
		},
		{name: "nested", typ: Sequence(Sequence(Primitive(PrimitiveBool))), want: "[[bool?]?]?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestType_Unwrapping(t *testing.T) {
	person := Named(KindComposite, "Types.Person").WithNullable(false)
	nested := Sequence(Sequence(person))

	assert.True(t, nested.IsSequence())
	assert.Equal(t, 2, nested.Depth())
	assert.Equal(t, person, nested.Innermost())
	assert.True(t, nested.IsComposite())

	assert.Equal(t, 0, person.Depth())
	assert.Equal(t, person, person.Innermost())

	assert.False(t, Sequence(Named(KindEnum, "Types.Kind")).IsComposite())
	assert.False(t, Primitive(PrimitiveFloat).IsComposite())
}

func TestType_WithNullableLeavesElements(t *testing.T) {
	elem := Primitive(PrimitiveInt)
	seq := Sequence(elem).WithNullable(false)

	assert.False(t, seq.Nullable)
	assert.True(t, seq.Elem.Nullable)
	assert.True(t, elem.Nullable)
}

func TestType_Equal(t *testing.T) {
	a := Sequence(Named(KindComposite, "Types.Person"))
	b := Sequence(Named(KindComposite, "Types.Person"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.WithNullable(false)))
	assert.False(t, a.Equal(Sequence(Named(KindComposite, "Types.Person2"))))
	assert.False(t, a.Equal(Named(KindComposite, "Types.Person")))
	assert.True(t, Primitive(PrimitiveString).Equal(Primitive(PrimitiveString)))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "primitive", KindPrimitive.String())
	assert.Equal(t, "composite", KindComposite.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestBuiltinPrimitive(t *testing.T) {
	tests := map[string]string{
		"String":  PrimitiveString,
		"Int":     PrimitiveInt,
		"Float":   PrimitiveFloat,
		"Boolean": PrimitiveBool,
	}
	for scalar, want := range tests {
		got, ok := BuiltinPrimitive(scalar)
		assert.True(t, ok, scalar)
		assert.Equal(t, want, got, scalar)
	}

	for _, scalar := range []string{"ID", "DateTime", "string"} {
		_, ok := BuiltinPrimitive(scalar)
		assert.False(t, ok, scalar)
	}
}
