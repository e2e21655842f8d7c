package typeexpr

// Kind identifies the shape of a Type.
type Kind int

const (
	// KindUnknown marks a type that could not be resolved to a concrete
	// descriptor. It maps to "no constraint" rather than an error.
	KindUnknown Kind = iota

	// KindAny accepts any value.
	KindAny

	// KindNone is the null type.
	KindNone

	// KindString is a string-like primitive.
	KindString

	// KindBoolean is a boolean-like primitive.
	KindBoolean

	// KindInteger is an integer primitive.
	KindInteger

	// KindFloat is a floating-point primitive.
	KindFloat

	// KindList is an array-like type. Element types are not modeled.
	KindList

	// KindMapping is a dictionary-like type. Key and value types are not modeled.
	KindMapping

	// KindUnion is a union of member types. Optional types are unions that
	// include a KindNone member.
	KindUnion

	// KindLiteral is a fixed set of literal values.
	KindLiteral

	// KindEnum is an enumeration with named members in declaration order.
	KindEnum

	// KindAnnotated wraps a base type with attached metadata.
	KindAnnotated
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	case KindUnion:
		return "union"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindAnnotated:
		return "annotated"
	default:
		return "unknown"
	}
}

// Type is a closed description of a declared parameter type. Values are
// immutable after construction; the zero value is the unknown type.
type Type struct {
	kind     Kind
	members  []Type   // union members
	literals []any    // literal values, may include nil
	names    []string // enum member names in declaration order
	elem     *Type    // enum underlying value type, if declared
	base     *Type    // annotated base type
	meta     []any    // annotated metadata items
}

// String returns the string type.
func String() Type { return Type{kind: KindString} }

// Boolean returns the boolean type.
func Boolean() Type { return Type{kind: KindBoolean} }

// Integer returns the integer type.
func Integer() Type { return Type{kind: KindInteger} }

// Float returns the floating-point type.
func Float() Type { return Type{kind: KindFloat} }

// Any returns the unconstrained type.
func Any() Type { return Type{kind: KindAny} }

// None returns the null type.
func None() Type { return Type{kind: KindNone} }

// List returns the array-like type.
func List() Type { return Type{kind: KindList} }

// Mapping returns the dictionary-like type.
func Mapping() Type { return Type{kind: KindMapping} }

// Unknown returns the unresolved type.
func Unknown() Type { return Type{kind: KindUnknown} }

// Union returns a union of the given member types.
func Union(members ...Type) Type {
	return Type{kind: KindUnion, members: append([]Type(nil), members...)}
}

// Optional returns a union of t and the null type.
func Optional(t Type) Type {
	return Union(t, None())
}

// Literal returns a type whose values are restricted to the given literals.
// A nil literal marks the value set as accepting null.
func Literal(values ...any) Type {
	return Type{kind: KindLiteral, literals: append([]any(nil), values...)}
}

// Enum returns an enumeration with the given member names, in declaration
// order. The underlying value type is left undeclared.
func Enum(names ...string) Type {
	return Type{kind: KindEnum, names: append([]string(nil), names...)}
}

// EnumOf returns an enumeration with a declared underlying value type.
func EnumOf(underlying Type, names ...string) Type {
	t := Enum(names...)
	t.elem = &underlying
	return t
}

// Annotated wraps base with the given metadata items. Metadata values are
// matched by shape during extraction: anything implementing Describer is a
// description marker, plain strings are fallback descriptions, and anything
// implementing Enumerator contributes enumeration members.
func Annotated(base Type, meta ...any) Type {
	b := base
	return Type{kind: KindAnnotated, base: &b, meta: append([]any(nil), meta...)}
}

// Kind returns the shape of the type.
func (t Type) Kind() Kind { return t.kind }

// Members returns the union member types, or nil for non-union types.
func (t Type) Members() []Type {
	return append([]Type(nil), t.members...)
}

// Literals returns the literal value set, or nil for non-literal types.
func (t Type) Literals() []any {
	return append([]any(nil), t.literals...)
}

// EnumNames returns enumeration member names in declaration order, or nil
// for non-enum types. Type satisfies Enumerator, so an enum type can be
// attached directly as annotation metadata.
func (t Type) EnumNames() []string {
	if t.kind != KindEnum {
		return nil
	}
	return append([]string(nil), t.names...)
}

// Underlying returns the declared underlying value type of an enumeration.
// The second result is false when no underlying type was declared or the
// type is not an enumeration.
func (t Type) Underlying() (Type, bool) {
	if t.kind != KindEnum || t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// Base returns the wrapped type of an annotated type, or the unknown type
// for anything else.
func (t Type) Base() Type {
	if t.kind != KindAnnotated || t.base == nil {
		return Type{}
	}
	return *t.base
}

// Metadata returns the metadata items of an annotated type in attachment
// order, or nil for anything else.
func (t Type) Metadata() []any {
	return append([]any(nil), t.meta...)
}

// Resolve strips annotation wrappers and returns the effective base type.
// Metadata on inner wrappers is discarded; only the outermost annotation is
// ever consulted.
func (t Type) Resolve() Type {
	for t.kind == KindAnnotated && t.base != nil {
		t = *t.base
	}
	return t
}

// Nullable reports whether the type admits null as a valid value: the null
// type itself, a union with a nullable member, or an annotation over a
// nullable base. Literal value sets are not consulted here; a null literal
// member is handled separately during extraction.
func (t Type) Nullable() bool {
	switch t.kind {
	case KindNone:
		return true
	case KindUnion:
		for _, m := range t.members {
			if m.Nullable() {
				return true
			}
		}
		return false
	case KindAnnotated:
		return t.Base().Nullable()
	default:
		return false
	}
}
