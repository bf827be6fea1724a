package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatible_Interface(t *testing.T) {
	s := loadTestSchema(t)
	ctx := New(s, Config{})

	withHandle, _ := fieldSelection(t, s, `{ node(id: "1") { id ... on Bot { handle } } }`)
	idOnly, _ := fieldSelection(t, s, `{ node(id: "1") { id } }`)

	id, err := ctx.ResolveNamed("Node", withHandle)
	require.NoError(t, err)
	assert.Equal(t, "Types.Node", id)

	a, ok := ctx.Artifact(id)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"Bot":  "Types.Node_Bot",
		"User": "Types.Node_User",
	}, a.Members)
	assert.Equal(t, []string{"id", "handle"}, propertyNames(t, ctx, "Types.Node_Bot"))
	assert.Equal(t, []string{"id"}, propertyNames(t, ctx, "Types.Node_User"))

	// The interface's own fields match, but Bot's generated shape has an
	// extra field.
	id, err = ctx.ResolveNamed("Node", idOnly)
	require.NoError(t, err)
	assert.Equal(t, "Types.Node2", id)
	assert.Equal(t, []string{"id"}, propertyNames(t, ctx, "Types.Node2_Bot"))

	id, err = ctx.ResolveNamed("Node", withHandle)
	require.NoError(t, err)
	assert.Equal(t, "Types.Node", id)
}

func TestCompatible_Union(t *testing.T) {
	s := loadTestSchema(t)
	ctx := New(s, Config{})

	users, _ := fieldSelection(t, s, `{ search(text: "a") { ... on User { login } } }`)
	both, _ := fieldSelection(t, s, `{ search(text: "a") { ... on User { login } ... on Bot { handle } } }`)

	id, err := ctx.ResolveNamed("SearchResult", users)
	require.NoError(t, err)
	assert.Equal(t, "Types.SearchResult", id)

	id, err = ctx.ResolveNamed("SearchResult", both)
	require.NoError(t, err)
	assert.Equal(t, "Types.SearchResult2", id)
	assert.Equal(t, []string{"handle"}, propertyNames(t, ctx, "Types.SearchResult2_Bot"))

	id, err = ctx.ResolveNamed("SearchResult", users)
	require.NoError(t, err)
	assert.Equal(t, "Types.SearchResult", id)
}

func TestCompatible_UnionIgnoresOwnFields(t *testing.T) {
	s := loadTestSchema(t)
	ctx := New(s, Config{})
	users, _ := fieldSelection(t, s, `{ search(text: "a") { ... on User { login } } }`)

	_, err := ctx.ResolveNamed("SearchResult", users)
	require.NoError(t, err)

	// The union's own generated shape now lacks the discriminator the
	// requested set carries; only members are compared.
	ctx.RecordDiscriminator("SearchResult")
	id, err := ctx.ResolveNamed("SearchResult", users)
	require.NoError(t, err)
	assert.Equal(t, "Types.SearchResult", id)
}

func TestCompatible_ObjectDiscriminator(t *testing.T) {
	s := loadTestSchema(t)
	ctx := New(s, Config{})
	sel, _ := fieldSelection(t, s, `{ person { name } }`)

	_, err := ctx.ResolveNamed("Person", sel)
	require.NoError(t, err)

	ctx.RecordDiscriminator("Person")
	id, err := ctx.ResolveNamed("Person", sel)
	require.NoError(t, err)
	assert.Equal(t, "Types.Person2", id)
	assert.Equal(t, []string{"__typename", "name"}, propertyNames(t, ctx, id))

	a, _ := ctx.Artifact(id)
	assert.Equal(t, "string", a.Properties[0].Type.String())
}

func TestCompatible_EquivalentSelections(t *testing.T) {
	tests := []struct {
		name  string
		first string
		then  string
		same  bool
	}{
		{
			name:  "fragment spread",
			first: `query { person { ...Names } } fragment Names on Person { name friends { name } }`,
			then:  `{ person { name friends { name } } }`,
			same:  true,
		},
		{
			name:  "inline fragment on the same type",
			first: `{ person { ... on Person { name } } }`,
			then:  `{ person { name } }`,
			same:  true,
		},
		{
			name:  "duplicate keys merge",
			first: `{ person { friends { name } friends { age } } }`,
			then:  `{ person { friends { name age } } }`,
			same:  true,
		},
		{
			name:  "field order does not matter",
			first: `{ person { age name } }`,
			then:  `{ person { name age } }`,
			same:  true,
		},
		{
			name:  "alias is a distinct key",
			first: `{ person { fullName: name } }`,
			then:  `{ person { name } }`,
		},
		{
			name:  "nested difference",
			first: `{ person { friends { name } } }`,
			then:  `{ person { friends { age } } }`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadTestSchema(t)
			first, doc := fieldSelection(t, s, tt.first)
			then, _ := fieldSelection(t, s, tt.then)
			ctx := newTestContext(t, s, doc)

			a, err := ctx.ResolveNamed("Person", first)
			require.NoError(t, err)
			b, err := ctx.ResolveNamed("Person", then)
			require.NoError(t, err)

			if tt.same {
				assert.Equal(t, a, b)
			} else {
				assert.NotEqual(t, a, b)
			}
		})
	}
}
