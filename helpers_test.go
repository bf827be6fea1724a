package typegen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
)

const testSchema = `
type Query {
	person: Person
	people(filter: PersonFilter): [Person!]!
	node(id: ID!): Node
	search(text: String!): [SearchResult!]!
	matrix: [[Int!]]!
}

type Mutation {
	rename(id: ID!, name: String!): Person
}

type Person {
	id: ID!
	name: String!
	age: Int
	born: DateTime
	kind: PersonKind!
	friends: [Person!]
}

enum PersonKind {
	HUMAN
	ROBOT
}

scalar DateTime

interface Node {
	id: ID!
}

type User implements Node {
	id: ID!
	login: String!
}

type Bot implements Node {
	id: ID!
	handle: String!
}

union SearchResult = User | Bot

input PersonFilter {
	name: String
	kind: PersonKind
	and: [PersonFilter!]
}
`

func loadTestSchema(t *testing.T) *schema.Schema {
	t.Helper()
	return schema.New(gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: testSchema}))
}

func loadTestQuery(t *testing.T, s *schema.Schema, query string) *ast.QueryDocument {
	t.Helper()
	doc, err := schema.LoadQuery(s, query)
	require.NoError(t, err)
	return doc
}

// newTestContext returns a context whose fragment resolver serves doc.
func newTestContext(t *testing.T, s *schema.Schema, doc *ast.QueryDocument) *Context {
	t.Helper()
	ctx := New(s, Config{})
	if doc != nil {
		ctx.WithFragments(schema.NewFragments(doc, s))
	}
	return ctx
}

// fieldSelection returns the sub-selection of the first root field of the
// first operation of query.
func fieldSelection(t *testing.T, s *schema.Schema, query string) (ast.SelectionSet, *ast.QueryDocument) {
	t.Helper()
	doc := loadTestQuery(t, s, query)
	require.NotEmpty(t, doc.Operations)
	require.NotEmpty(t, doc.Operations[0].SelectionSet)
	field, ok := doc.Operations[0].SelectionSet[0].(*ast.Field)
	require.True(t, ok, "first selection is not a field")
	return field.SelectionSet, doc
}

func propertyNames(t *testing.T, ctx *Context, identifier string) []string {
	t.Helper()
	a, ok := ctx.Artifact(identifier)
	require.True(t, ok, "no artifact %s", identifier)
	names := make([]string, 0, len(a.Properties))
	for _, p := range a.Properties {
		names = append(names, p.Name)
	}
	return names
}
