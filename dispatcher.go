package typegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-graphql-typegen/internal/fieldset"
	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/shape"
	"github.com/llehouerou/go-graphql-typegen/types"
)

// ResolveNamed returns the identifier of the variant generated for the
// named schema type under selection, emitting a new variant when no
// existing one matches.
//
// Without a selection the canonical (first) variant is returned whenever
// one exists, regardless of later variants.
func (c *Context) ResolveNamed(name string, selection ast.SelectionSet) (string, error) {
	def, ok := c.registry.Type(name)
	if !ok {
		return "", newError(ErrMissingDefinition, name, errors.New("no definition in schema"))
	}

	if c.cache.len(name) == 0 {
		id, err := c.emitVariant(def, selection)
		if err != nil {
			return "", err
		}
		c.log.V(1).Info("cache miss", "type", name, "variant", id)
		return id, nil
	}

	if len(selection) == 0 {
		v, _ := c.cache.canonical(name)
		return v.Identifier, nil
	}

	for _, v := range c.cache.list(name) {
		ok, err := c.compatible(c.Unqualify(v.Identifier), def, selection)
		if err != nil {
			return "", classify(name, err)
		}
		if ok {
			c.log.V(1).Info("cache hit", "type", name, "variant", v.Identifier)
			return v.Identifier, nil
		}
	}

	if !schema.IsSelectable(def) {
		// Unreachable: the compatibility check accepts every variant of
		// kinds whose shape does not depend on the selection.
		v, _ := c.cache.canonical(name)
		return v.Identifier, nil
	}
	id, err := c.emitVariant(def, selection)
	if err != nil {
		return "", err
	}
	c.log.V(1).Info("new variant", "type", name, "variant", id, "variants", c.cache.len(name))
	return id, nil
}

// emitVariant emits def under selection and registers the result as a new
// variant. The local name is reserved before emission starts, so nested
// emissions of the same type pick the next free name. Nothing is
// registered when emission fails.
func (c *Context) emitVariant(def schema.Definition, selection ast.SelectionSet) (string, error) {
	name := def.TypeName()
	key, err := c.guardKey(def, selection)
	if err != nil {
		return "", classify(name, err)
	}
	if id, ok := c.inProgress[key]; ok {
		switch def.(type) {
		case *schema.InputObject, *schema.Enum:
			// Recursive input types: the single variant's identifier is
			// known before its emission completes.
			return id, nil
		}
		return "", newError(
			ErrRecursiveSelection,
			name,
			errors.New("selection re-enters the type before its variant is registered"),
		)
	}

	var opts shape.Options
	if c.nameTaken(name) {
		opts.OverrideName = c.nextVariantName(name)
	}
	id := c.Qualify(opts.LocalName(name))
	c.inProgress[key] = id
	c.reserved[id] = true
	defer func() {
		delete(c.inProgress, key)
		delete(c.reserved, id)
	}()

	emitter, err := schema.Visit[shape.Emitter](def, emitterPicker{c: c})
	if err != nil {
		return "", newError(ErrUnknownSchemaType, name, err)
	}
	a, err := emitter.Emit(c, def, selection, opts)
	if err != nil {
		return "", classify(name, err)
	}

	c.register(a)
	c.cache.add(name, a.Identifier)
	return a.Identifier, nil
}

// guardKey identifies an emission in progress: the type name plus the
// field paths the selection requests from it and, for abstract types, from
// each of its concrete types.
func (c *Context) guardKey(def schema.Definition, selection ast.SelectionSet) (string, error) {
	name := def.TypeName()
	if len(selection) == 0 || !schema.IsSelectable(def) {
		return name, nil
	}
	targets := append([]string{name}, schema.PossibleTypeNames(c.registry, name)...)
	var b strings.Builder
	b.WriteString(name)
	for _, target := range targets {
		set, err := fieldset.Requested(selection, target, c.fragments, c.Discriminated, c.abstractMembers)
		if err != nil {
			return "", err
		}
		b.WriteString("|")
		b.WriteString(target)
		b.WriteString("{")
		b.WriteString(set.String())
		b.WriteString("}")
	}
	return b.String(), nil
}

// nameTaken reports whether local already names a generated or
// in-progress artifact.
func (c *Context) nameTaken(local string) bool {
	id := c.Qualify(local)
	_, generated := c.shapes[id]
	return generated || c.reserved[id]
}

// nextVariantName returns the first free disambiguated local name for a
// new variant of typeName: Person2, Person3, ... Names of schema types are
// never used.
func (c *Context) nextVariantName(typeName string) string {
	for n := types.FirstVariantSuffix; ; n++ {
		local := fmt.Sprintf("%s%d", typeName, n)
		if c.nameTaken(local) {
			continue
		}
		if _, taken := c.registry.Type(local); taken {
			continue
		}
		return local
	}
}

// emitterPicker selects the shape emitter for a definition kind.
type emitterPicker struct {
	c *Context
}

func (p emitterPicker) VisitScalar(d *schema.Scalar) (shape.Emitter, error) {
	if _, ok := p.c.ScalarConverter(d.TypeName()); ok {
		return p.c.emitters.Scalar, nil
	}
	return p.c.emitters.ScalarAlias, nil
}

func (p emitterPicker) VisitObject(*schema.Object) (shape.Emitter, error) {
	return p.c.emitters.Object, nil
}

func (p emitterPicker) VisitInputObject(*schema.InputObject) (shape.Emitter, error) {
	return p.c.emitters.InputObject, nil
}

func (p emitterPicker) VisitEnum(*schema.Enum) (shape.Emitter, error) {
	return p.c.emitters.Enum, nil
}

func (p emitterPicker) VisitInterface(*schema.Interface) (shape.Emitter, error) {
	return p.c.emitters.Interface, nil
}

func (p emitterPicker) VisitUnion(*schema.Union) (shape.Emitter, error) {
	return p.c.emitters.Union, nil
}

// classify turns collaborator errors into typed errors. Errors already
// carrying a code keep the field context they were wrapped with, and the
// field they failed under is prepended to their path.
func classify(typeName string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		var f *shape.FieldError
		if errors.As(err, &f) && errors.As(f.Err, new(*Error)) {
			e.Path = fieldset.Join(f.Key, e.Path)
		}
		return err
	}
	switch {
	case errors.Is(err, schema.ErrFragmentNotFound):
		e = newError(ErrMissingFragment, typeName, err)
	case errors.Is(err, fieldset.ErrFragmentCycle):
		e = newError(ErrRecursiveSelection, typeName, err)
	case errors.Is(err, schema.ErrUnknownField):
		e = newError(ErrMissingDefinition, typeName, err)
	default:
		return fmt.Errorf("failed to emit %s: %w", typeName, err)
	}
	var f *shape.FieldError
	if errors.As(err, &f) {
		e.Path = f.Key
	}
	return e
}
