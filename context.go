// Package typegen resolves GraphQL schema type references into generated
// target-type representations for a typed client generator.
//
// For every (schema type, selection set) pair met while walking a query
// document, a Context decides whether a previously generated variant of
// the type can be reused or whether a new, structurally distinct variant
// must be emitted:
//
//	ctx := typegen.New(registry, typegen.Config{RootContainer: "Types"})
//	res, err := ctx.Generate(doc)
//
// A Context holds the state of exactly one generation run. It is not safe
// for concurrent use.
package typegen

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/llehouerou/go-graphql-typegen/internal/fieldset"
	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/shape"
	"github.com/llehouerou/go-graphql-typegen/types"
)

// Default naming of generated code.
const (
	DefaultNamespace     = "generated"
	DefaultRootContainer = "Types"
)

// Config fixes the naming and scalar bindings of a run.
type Config struct {
	// Namespace is the target namespace generated code lives in.
	Namespace string
	// RootContainer qualifies every generated identifier:
	// <RootContainer>.<localName>.
	RootContainer string
	// Scalars binds scalar names to externally supplied converter markers.
	// A bound scalar gets no alias.
	Scalars map[string]string
}

// Context is the state of one generation run: the schema registry, the
// variant cache, the generated shapes and the discriminator set.
//
// The With* methods modify the receiver and return it, so they can be
// chained right after New.
type Context struct {
	registry  schema.Registry
	fragments fieldset.FragmentResolver
	emitters  shape.Emitters
	config    Config

	cache         *variantCache
	shapes        map[string]*shape.Artifact
	artifacts     []*shape.Artifact
	discriminated map[string]bool
	inProgress    map[string]string
	reserved      map[string]bool

	log   logr.Logger
	runID uuid.UUID
}

// New creates the context of a new generation run.
func New(registry schema.Registry, config Config) *Context {
	if config.Namespace == "" {
		config.Namespace = DefaultNamespace
	}
	if config.RootContainer == "" {
		config.RootContainer = DefaultRootContainer
	}
	runID := uuid.New()
	return &Context{
		registry:      registry,
		emitters:      shape.DefaultEmitters(),
		config:        config,
		cache:         newVariantCache(),
		shapes:        map[string]*shape.Artifact{},
		discriminated: map[string]bool{},
		inProgress:    map[string]string{},
		reserved:      map[string]bool{},
		log:           logr.Discard(),
		runID:         runID,
	}
}

// WithLogger sets the logger. Cache decisions are logged at V(1).
func (c *Context) WithLogger(log logr.Logger) *Context {
	c.log = log.WithValues("run", c.runID.String())
	return c
}

// WithEmitters replaces the shape emitters; unset kinds keep the defaults.
func (c *Context) WithEmitters(e shape.Emitters) *Context {
	c.emitters = e.WithDefaults()
	return c
}

// WithFragments sets the resolver used for fragment spreads. Generate sets
// it from the query document.
func (c *Context) WithFragments(f fieldset.FragmentResolver) *Context {
	c.fragments = f
	return c
}

// RunID identifies the generation run.
func (c *Context) RunID() uuid.UUID {
	return c.runID
}

// Config returns the run configuration with defaults applied.
func (c *Context) Config() Config {
	return c.config
}

// Registry implements shape.Resolver.
func (c *Context) Registry() schema.Registry {
	return c.registry
}

// Fragments implements shape.Resolver.
func (c *Context) Fragments() fieldset.FragmentResolver {
	return c.fragments
}

// Discriminated implements shape.Resolver.
func (c *Context) Discriminated(typeName string) bool {
	return c.discriminated[typeName]
}

// RecordDiscriminator marks typeName as queried with __typename.
func (c *Context) RecordDiscriminator(typeName string) {
	c.discriminated[typeName] = true
}

// ScalarConverter implements shape.Resolver.
func (c *Context) ScalarConverter(name string) (string, bool) {
	marker, ok := c.config.Scalars[name]
	return marker, ok
}

// Qualify implements shape.Resolver.
func (c *Context) Qualify(local string) string {
	return c.config.RootContainer + types.QualifierSeparator + local
}

// Unqualify strips the root container from a generated identifier.
func (c *Context) Unqualify(identifier string) string {
	return strings.TrimPrefix(identifier, c.config.RootContainer+types.QualifierSeparator)
}

// Artifact returns the shape generated under identifier.
func (c *Context) Artifact(identifier string) (*shape.Artifact, bool) {
	a, ok := c.shapes[identifier]
	return a, ok
}

// Artifacts returns every generated shape, member shapes included, in
// creation order.
func (c *Context) Artifacts() []*shape.Artifact {
	out := make([]*shape.Artifact, len(c.artifacts))
	copy(out, c.artifacts)
	return out
}

// Variants returns the variants generated for a schema type name in
// creation order. The first one is canonical.
func (c *Context) Variants(typeName string) []Variant {
	return c.cache.list(typeName)
}

// layout returns the layout generated under identifier.
func (c *Context) layout(identifier string) (fieldset.Layout, bool) {
	a, ok := c.shapes[identifier]
	if !ok {
		return fieldset.Layout{}, false
	}
	return fieldset.Layout{Properties: a.Properties, Members: a.Members}, true
}

// abstractMembers returns the concrete type names of an interface or
// union, and nil for any other type.
func (c *Context) abstractMembers(typeName string) []string {
	def, ok := c.registry.Type(typeName)
	if !ok {
		return nil
	}
	switch def.(type) {
	case *schema.Interface, *schema.Union:
		return schema.PossibleTypeNames(c.registry, typeName)
	}
	return nil
}

// register records an emitted artifact and its member shapes in the shape
// lookup.
func (c *Context) register(a *shape.Artifact) {
	c.shapes[a.Identifier] = a
	c.artifacts = append(c.artifacts, a)
	for _, m := range a.Nested {
		c.register(m)
	}
}
