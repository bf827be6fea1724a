package typegen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/shape"
	"github.com/llehouerou/go-graphql-typegen/pkg/typeref"
	"github.com/llehouerou/go-graphql-typegen/types"
)

// Operation is the resolved form of one operation of a query document.
type Operation struct {
	Name      string
	Kind      ast.Operation
	Data      typeref.Type
	Variables []typeref.Property
}

// Result is the outcome of a generation run.
type Result struct {
	RunID     uuid.UUID
	Namespace string
	// Operations lists the document's operations in declaration order.
	Operations []Operation
	// Fragments maps fragment names to the canonical variant of their type
	// condition.
	Fragments map[string]string
	// Artifacts lists every generated shape in creation order.
	Artifacts []*shape.Artifact
}

// rootTyper is implemented by registries that know the schema's root
// operation types.
type rootTyper interface {
	RootType(op ast.Operation) (*schema.Object, bool)
}

// Generate resolves every operation of doc, then the type conditions of its
// fragments. Any error aborts the run; no partial result is returned.
func (c *Context) Generate(doc *ast.QueryDocument) (*Result, error) {
	if doc == nil {
		return nil, errors.New("query document is required")
	}
	if c.fragments == nil {
		c.fragments = schema.NewFragments(doc, c.registry)
	}
	c.ScanDiscriminators(doc)

	res := &Result{
		RunID:     c.runID,
		Namespace: c.config.Namespace,
		Fragments: map[string]string{},
	}
	for _, op := range doc.Operations {
		resolved, err := c.resolveOperation(op)
		if err != nil {
			return nil, fmt.Errorf("operation %s: %w", operationName(op), err)
		}
		res.Operations = append(res.Operations, resolved)
	}
	for _, frag := range doc.Fragments {
		id, err := c.ResolveNamed(frag.TypeCondition, nil)
		if err != nil {
			return nil, fmt.Errorf("fragment %s: %w", frag.Name, err)
		}
		res.Fragments[frag.Name] = id
	}
	res.Artifacts = c.Artifacts()

	c.log.Info("generation finished",
		"operations", len(res.Operations),
		"artifacts", len(res.Artifacts),
	)
	return res, nil
}

func (c *Context) resolveOperation(op *ast.OperationDefinition) (Operation, error) {
	out := Operation{Name: op.Name, Kind: op.Operation}
	for _, v := range op.VariableDefinitions {
		t, err := c.ResolveType(v.Type, nil)
		if err != nil {
			return Operation{}, fmt.Errorf("variable $%s: %w", v.Variable, err)
		}
		out.Variables = append(out.Variables, typeref.Property{Name: v.Variable, Type: t})
	}
	root, err := c.rootTypeName(op.Operation)
	if err != nil {
		return Operation{}, err
	}
	data, err := c.ResolveType(&ast.Type{NamedType: root, NonNull: true}, op.SelectionSet)
	if err != nil {
		return Operation{}, err
	}
	out.Data = data
	return out, nil
}

func (c *Context) rootTypeName(op ast.Operation) (string, error) {
	if rt, ok := c.registry.(rootTyper); ok {
		if obj, ok := rt.RootType(op); ok {
			return obj.TypeName(), nil
		}
		return "", newError(ErrMissingDefinition, string(op), errors.New("schema has no root type"))
	}
	switch op {
	case ast.Mutation:
		return "Mutation", nil
	case ast.Subscription:
		return "Subscription", nil
	default:
		return "Query", nil
	}
}

func operationName(op *ast.OperationDefinition) string {
	if op.Name == "" {
		return "<anonymous " + string(op.Operation) + ">"
	}
	return op.Name
}

// ScanDiscriminators records every type doc queries with __typename: the
// type of the enclosing field, inline fragment or fragment definition.
func (c *Context) ScanDiscriminators(doc *ast.QueryDocument) {
	for _, op := range doc.Operations {
		root, err := c.rootTypeName(op.Operation)
		if err != nil {
			continue
		}
		c.scanDiscriminators(op.SelectionSet, root)
	}
	for _, frag := range doc.Fragments {
		c.scanDiscriminators(frag.SelectionSet, frag.TypeCondition)
	}
}

func (c *Context) scanDiscriminators(sel ast.SelectionSet, enclosing string) {
	for _, s := range sel {
		switch s := s.(type) {
		case *ast.Field:
			if s.Name == types.TypenameField {
				c.RecordDiscriminator(enclosing)
				continue
			}
			if len(s.SelectionSet) > 0 && s.Definition != nil && s.Definition.Type != nil {
				c.scanDiscriminators(s.SelectionSet, s.Definition.Type.Name())
			}
		case *ast.InlineFragment:
			cond := s.TypeCondition
			if cond == "" {
				cond = enclosing
			}
			c.scanDiscriminators(s.SelectionSet, cond)
		}
		// Fragment spreads are scanned through their definitions.
	}
}
