// Package typeexpr models declared parameter types as a closed tagged union.
//
// Schema derivation needs to pattern-match exhaustively over the shapes a
// declared type can take: primitives, the null type, unions (including the
// optional form), literal value sets, lists, mappings, enumerations, and
// annotation wrappers that attach metadata to a base type. Type captures
// those shapes as an immutable value; anything that cannot be expressed is
// the unknown type, which downstream consumers treat as "no constraint"
// rather than an error.
//
// # Metadata
//
// Annotated types carry an ordered list of metadata items that are matched
// by shape, not by identity:
//
//   - any value implementing Describer is a description marker
//   - a plain string is a fallback description
//   - any value implementing Enumerator contributes enumeration members
//
// Doc is the canonical description marker:
//
//	t := typeexpr.Annotated(
//	    typeexpr.Optional(typeexpr.String()),
//	    typeexpr.Doc("The unit to return the temperature in"),
//	    typeexpr.Enum("celsius", "fahrenheit"),
//	)
//
// # Reflection
//
// FromGoType and FromValue bridge Go's reflection into the type model, with
// pointer types mapping to optional types. Parameter names, defaults, and
// annotations cannot be recovered through reflection, so the bridge covers
// only the type shape.
package typeexpr
