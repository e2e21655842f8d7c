// Package schema derives JSON-schema-shaped function-calling descriptions
// from declared parameter types.
//
// Large-language-model providers accept tool definitions as a JSON schema of
// the tool's inputs. This package turns an ordered parameter list, where
// each parameter carries a typeexpr.Type and optionally a default, into that
// schema in one of two provider dialects.
//
// # Pipeline
//
// Three functions collaborate, leaf to root:
//
//   - MapType recursively maps a type expression to its schema type token
//     set: "string", "boolean", "number", "array", "object", or no
//     constraint at all. Unions deduplicate member tokens and collapse a
//     single remaining token to a scalar; integer and float both map to
//     "number".
//
//   - Extract normalizes one parameter into a ParameterSpec: it unwraps
//     annotation metadata, resolves the description (marker, then plain
//     string, then a synthesized fallback), resolves the enumeration
//     (metadata enumerator, then literal values), carries the default
//     through, and decides whether the parameter is required.
//
//   - Build iterates the parameters in declaration order, assembles the
//     ordered property map and the required set, and wraps them in the
//     dialect envelope: "parameters" for openai and everything else,
//     "input_schema" for claude.
//
// # Required policy
//
// A parameter is required when no default was supplied and its type, after
// removing a literal's null member, still disallows null. One deliberate
// exception survives from the reference behavior: a literal type whose value
// set is entirely non-null is marked required even when a default value was
// supplied.
//
// # Error handling
//
// Nothing here returns an error for malformed input. Unresolvable types emit
// properties without a type constraint, missing descriptions are
// synthesized, and missing enumerations are omitted. The pipeline is a pure
// function of its inputs and safe for concurrent use.
//
// Validate checks call arguments against a derived document, limited to the
// facets the documents model: required presence, type tokens, and
// enumeration membership.
package schema
