package typeexpr

// Describer is the documentation marker contract. Any metadata value that
// exposes its text through Description is accepted as a description marker,
// regardless of where the type is defined.
type Describer interface {
	Description() string
}

// Enumerator is the enumeration contract for metadata values. Member names
// must be returned in declaration order. Type satisfies this interface for
// enum types, and third-party enumerations can implement it directly.
type Enumerator interface {
	EnumNames() []string
}

// Doc is the canonical description marker. It is constructed from a single
// string and exposes it unchanged.
type Doc string

// Description returns the marker text.
func (d Doc) Description() string { return string(d) }
