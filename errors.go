package typegen

import (
	"errors"
	"fmt"
)

// Error codes. Every error aborts the generation run.
const (
	// ErrUnknownSchemaType: a type reference has a shape the resolver does
	// not recognize.
	ErrUnknownSchemaType = "unknown_schema_type"
	// ErrMissingDefinition: a named reference has no schema definition.
	ErrMissingDefinition = "missing_definition"
	// ErrMissingFragment: a fragment spread has no applicable definition.
	ErrMissingFragment = "missing_fragment"
	// ErrRecursiveSelection: a selection re-enters a type that is still
	// being emitted for the same selection.
	ErrRecursiveSelection = "recursive_selection"
)

// Error is a fatal resolution failure, carrying the offending type and,
// when known, the field path leading to it.
type Error struct {
	Code     string
	TypeName string
	// Path is the dotted response-key path from the outermost resolved
	// type down to the failing field, e.g. "person.friends". Empty when
	// the failure is not below a field.
	Path     string
	Err      error
}

// Error implements error interface.
func (e *Error) Error() string {
	if e.TypeName == "" {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: type %s: %v", e.Code, e.TypeName, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetCode returns the error code.
func (e *Error) GetCode() string {
	return e.Code
}

// newError creates a new Error with the given code and underlying error.
func newError(code, typeName string, err error) *Error {
	return &Error{Code: code, TypeName: typeName, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or an empty
// string if there is none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
