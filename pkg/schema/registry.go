package schema

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// Registry looks up named type definitions.
type Registry interface {
	// Type returns the definition registered under name. Lookups are exact
	// and case-sensitive.
	Type(name string) (Definition, bool)
	// ImplementationsOf returns the concrete object types implementing
	// iface, ordered by name.
	ImplementationsOf(iface *Interface) []*Object
	// PossibleTypes returns the member object types of u in declaration
	// order.
	PossibleTypes(u *Union) []*Object
}

// Schema is a Registry backed by a validated gqlparser schema.
type Schema struct {
	ast  *ast.Schema
	defs map[string]Definition
}

// New wraps a validated schema.
func New(s *ast.Schema) *Schema {
	defs := make(map[string]Definition, len(s.Types))
	for name, def := range s.Types {
		if d, ok := Wrap(def); ok {
			defs[name] = d
		}
	}
	return &Schema{ast: s, defs: defs}
}

// AST returns the underlying parsed schema.
func (s *Schema) AST() *ast.Schema {
	return s.ast
}

// Type implements Registry.
func (s *Schema) Type(name string) (Definition, bool) {
	d, ok := s.defs[name]
	return d, ok
}

// ImplementationsOf implements Registry.
func (s *Schema) ImplementationsOf(iface *Interface) []*Object {
	var objects []*Object
	for _, def := range s.ast.PossibleTypes[iface.TypeName()] {
		if obj, ok := s.defs[def.Name].(*Object); ok {
			objects = append(objects, obj)
		}
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].TypeName() < objects[j].TypeName()
	})
	return objects
}

// PossibleTypes implements Registry.
func (s *Schema) PossibleTypes(u *Union) []*Object {
	objects := make([]*Object, 0, len(u.AST().Types))
	for _, name := range u.AST().Types {
		if obj, ok := s.defs[name].(*Object); ok {
			objects = append(objects, obj)
		}
	}
	return objects
}

// RootType returns the object type operations of kind op start from.
func (s *Schema) RootType(op ast.Operation) (*Object, bool) {
	var def *ast.Definition
	switch op {
	case ast.Query:
		def = s.ast.Query
	case ast.Mutation:
		def = s.ast.Mutation
	case ast.Subscription:
		def = s.ast.Subscription
	}
	if def == nil {
		return nil, false
	}
	obj, ok := s.defs[def.Name].(*Object)
	return obj, ok
}

// PossibleTypeNames returns the names of the concrete object types a value
// of the named type can have at runtime. Objects return themselves.
func PossibleTypeNames(r Registry, name string) []string {
	def, ok := r.Type(name)
	if !ok {
		return nil
	}
	var objects []*Object
	switch d := def.(type) {
	case *Object:
		return []string{d.TypeName()}
	case *Interface:
		objects = r.ImplementationsOf(d)
	case *Union:
		objects = r.PossibleTypes(d)
	}
	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.TypeName())
	}
	return names
}
