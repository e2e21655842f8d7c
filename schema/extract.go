package schema

import (
	"fmt"

	"github.com/funcschema/go-funcschema/typeexpr"
)

// Param is one declared parameter of a callable: its name, declared type,
// and optionally a default value. HasDefault keeps "no default" distinct
// from an explicit null default.
type Param struct {
	Name       string
	Type       typeexpr.Type
	Default    any
	HasDefault bool
}

// NewParam returns a parameter with the given name and declared type and no
// default value.
func NewParam(name string, t typeexpr.Type) Param {
	return Param{Name: name, Type: t}
}

// WithDefault returns a copy of the parameter with the given default value.
// A nil default is an explicit null, not an absent default.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// ParameterSpec is the normalized extraction result for one parameter.
// It is created once per parameter and not modified afterwards.
type ParameterSpec struct {
	// Name is the parameter name.
	Name string

	// BaseType is the declared type with annotation wrappers resolved away.
	BaseType typeexpr.Type

	// Description is the resolved documentation text; never empty.
	Description string

	// Enum is the allowed value list, nil when the parameter is not
	// enumerated. Entries may include null, which is filtered at emission.
	Enum []any

	// Default and HasDefault carry the declared default through unchanged.
	Default    any
	HasDefault bool

	// Required reports whether the parameter must be supplied.
	Required bool
}

// Extract normalizes a parameter's declared type and metadata.
//
// The description is resolved first-match-wins: a description marker beats
// a plain string, which beats the synthesized "The {name} parameter"
// fallback. The enumeration comes from the first Enumerator metadata item,
// or from the literal value set when the base type is a literal.
//
// A parameter is required when no default was supplied and its type
// disallows null. Literal types follow their own rule: a literal whose value
// set is entirely non-null is required even when a default was supplied,
// while a null literal member makes the parameter optional.
func Extract(p Param) ParameterSpec {
	base := p.Type
	var meta []any
	if base.Kind() == typeexpr.KindAnnotated {
		meta = base.Metadata()
		base = base.Resolve()
	}

	spec := ParameterSpec{
		Name:        p.Name,
		BaseType:    base,
		Description: extractDescription(p.Name, meta),
		Enum:        extractEnum(base, meta),
		Default:     p.Default,
		HasDefault:  p.HasDefault,
	}

	if base.Kind() == typeexpr.KindLiteral {
		spec.Required = true
		for _, v := range base.Literals() {
			if v == nil {
				spec.Required = false
				break
			}
		}
	} else {
		spec.Required = !base.Nullable() && !p.HasDefault
	}

	return spec
}

// extractDescription resolves the parameter description from metadata.
// Presence wins over content: an empty description marker still takes
// priority over a plain string.
func extractDescription(name string, meta []any) string {
	for _, m := range meta {
		if d, ok := m.(typeexpr.Describer); ok {
			return d.Description()
		}
	}
	for _, m := range meta {
		if s, ok := m.(string); ok {
			return s
		}
	}
	return fmt.Sprintf("The %s parameter", name)
}

// extractEnum resolves the enumeration value list. The first Enumerator
// metadata item with members wins; otherwise a literal base type supplies
// its values directly, including any null literal.
func extractEnum(base typeexpr.Type, meta []any) []any {
	for _, m := range meta {
		e, ok := m.(typeexpr.Enumerator)
		if !ok {
			continue
		}
		names := e.EnumNames()
		if len(names) == 0 {
			continue
		}
		enum := make([]any, len(names))
		for i, n := range names {
			enum[i] = n
		}
		return enum
	}

	if base.Kind() == typeexpr.KindLiteral {
		if values := base.Literals(); len(values) > 0 {
			return values
		}
	}
	return nil
}
