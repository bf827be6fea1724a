// Package schema exposes a read-only view of a parsed GraphQL schema to the
// type resolution core.
//
// Named type definitions form a closed set of six kinds. Each kind has its
// own Go type, and kind-based dispatch goes through Visit with a Visitor
// implementing one method per kind, so a new kind cannot be added without
// touching every dispatch site.
package schema

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// Definition is a named schema type definition. It is implemented only by
// the six kind types of this package.
type Definition interface {
	// TypeName returns the schema name of the definition.
	TypeName() string
	// AST returns the underlying parsed definition.
	AST() *ast.Definition

	definition()
}

type base struct {
	def *ast.Definition
}

func (b base) TypeName() string     { return b.def.Name }
func (b base) AST() *ast.Definition { return b.def }
func (base) definition()            {}

// Scalar is a scalar type definition other than the four built-ins.
type Scalar struct{ base }

// Object is an output object type definition.
type Object struct{ base }

// InputObject is an input object type definition.
type InputObject struct{ base }

// Enum is an enumeration type definition.
type Enum struct{ base }

// Interface is an interface type definition.
type Interface struct{ base }

// Union is a union type definition.
type Union struct{ base }

// Wrap returns the kind-specific Definition for def. It reports false when
// def is nil or carries a kind this package does not know.
func Wrap(def *ast.Definition) (Definition, bool) {
	if def == nil {
		return nil, false
	}
	b := base{def: def}
	switch def.Kind {
	case ast.Scalar:
		return &Scalar{b}, true
	case ast.Object:
		return &Object{b}, true
	case ast.InputObject:
		return &InputObject{b}, true
	case ast.Enum:
		return &Enum{b}, true
	case ast.Interface:
		return &Interface{b}, true
	case ast.Union:
		return &Union{b}, true
	default:
		return nil, false
	}
}

// Visitor handles every definition kind. Implementations are checked by
// the compiler: a missing kind is a build error.
type Visitor[T any] interface {
	VisitScalar(*Scalar) (T, error)
	VisitObject(*Object) (T, error)
	VisitInputObject(*InputObject) (T, error)
	VisitEnum(*Enum) (T, error)
	VisitInterface(*Interface) (T, error)
	VisitUnion(*Union) (T, error)
}

// Visit dispatches d to the matching Visitor method.
func Visit[T any](d Definition, v Visitor[T]) (T, error) {
	switch def := d.(type) {
	case *Scalar:
		return v.VisitScalar(def)
	case *Object:
		return v.VisitObject(def)
	case *InputObject:
		return v.VisitInputObject(def)
	case *Enum:
		return v.VisitEnum(def)
	case *Interface:
		return v.VisitInterface(def)
	case *Union:
		return v.VisitUnion(def)
	default:
		// Definition is sealed; only a nil value ends up here.
		var zero T
		return zero, fmt.Errorf("unsupported definition %T", d)
	}
}

// IsSelectable reports whether the shape generated for d depends on the
// selection set it is requested with.
func IsSelectable(d Definition) bool {
	switch d.(type) {
	case *Object, *Interface, *Union:
		return true
	default:
		return false
	}
}
