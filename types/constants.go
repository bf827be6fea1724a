package types

// GraphQL-related constants used throughout the codebase.
const (
	// TypenameField is the GraphQL introspection field used for type
	// discrimination in unions and interfaces. It doubles as the
	// discriminator marker inside field sets and as the name of the
	// generated discriminator property.
	TypenameField = "__typename"

	// PathSeparator joins a parent field name and a child field name in a
	// dotted field path (e.g., "author.login").
	PathSeparator = "."

	// QualifierSeparator joins the root container name and a local type
	// name in a generated identifier (e.g., "Types.Person").
	QualifierSeparator = "."

	// ScalarBindingSeparator separates a scalar name from its converter
	// marker in a scalar binding (e.g., "DateTime: time.Time").
	ScalarBindingSeparator = ":"
)

// Built-in GraphQL scalar names that map directly to primitive
// representations (see typeref.BuiltinPrimitive).
const (
	StringScalar  = "String"
	IntScalar     = "Int"
	FloatScalar   = "Float"
	BooleanScalar = "Boolean"
)

// FirstVariantSuffix is the numeric suffix of the first non-canonical
// variant of a type (Person, Person2, Person3, ...).
const FirstVariantSuffix = 2
