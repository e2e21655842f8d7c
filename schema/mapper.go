package schema

import (
	"github.com/funcschema/go-funcschema/typeexpr"
)

// MapType maps a type expression to its schema type token set.
//
// The rules are evaluated in precedence order:
//
//  1. Any maps to no constraint (empty set).
//  2. Annotated maps to its base; metadata is consumed by Extract, not here.
//  3. Union drops null members, maps the rest, and deduplicates the tokens.
//     The scalar collapse for a single remaining token happens at emission
//     time through TypeSet.
//  4. Literal maps the union of its values' runtime types.
//  5. List maps to "array", Mapping to "object".
//  6. None maps to no constraint; nullability is the extractor's concern.
//  7. Enum maps its declared underlying value type, or no constraint when
//     none was declared. Enumeration members are resolved by Extract.
//  8. Primitives map to their tokens; integer and float both map to
//     "number", since JSON schema's number subsumes integers.
//  9. Anything unresolvable maps to no constraint, never an error.
func MapType(t typeexpr.Type) TypeSet {
	switch t.Kind() {
	case typeexpr.KindAny:
		return nil
	case typeexpr.KindAnnotated:
		return MapType(t.Base())
	case typeexpr.KindUnion:
		return mapUnion(t.Members())
	case typeexpr.KindLiteral:
		return mapLiteral(t.Literals())
	case typeexpr.KindList:
		return TypeSet{TypeArray}
	case typeexpr.KindMapping:
		return TypeSet{TypeObject}
	case typeexpr.KindNone:
		return nil
	case typeexpr.KindEnum:
		if underlying, ok := t.Underlying(); ok {
			return MapType(underlying)
		}
		return nil
	case typeexpr.KindString:
		return TypeSet{TypeString}
	case typeexpr.KindBoolean:
		return TypeSet{TypeBoolean}
	case typeexpr.KindInteger, typeexpr.KindFloat:
		return TypeSet{TypeNumber}
	default:
		return nil
	}
}

// mapUnion maps each non-null member and deduplicates the resulting tokens
// in first-seen order. Members that map to no constraint contribute nothing.
func mapUnion(members []typeexpr.Type) TypeSet {
	var out TypeSet
	seen := make(map[string]struct{})
	for _, m := range members {
		if m.Kind() == typeexpr.KindNone {
			continue
		}
		for _, token := range MapType(m) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return out
}

// mapLiteral maps the runtime types of the literal values, deduplicated in
// first-seen order. Null literals contribute nothing.
func mapLiteral(values []any) TypeSet {
	var out TypeSet
	seen := make(map[string]struct{})
	for _, v := range values {
		token := tokenForValue(v)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// tokenForValue returns the schema token for a literal value's runtime type.
// Booleans are checked before the numeric types; host type systems where
// boolean is a numeric subtype must not coerce them to "number". Unsupported
// value types return the empty token.
func tokenForValue(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return TypeNumber
	default:
		return ""
	}
}
