package schema

import (
	"bytes"
	"encoding/json"
	"sort"
)

// JSON schema type tokens emitted by the mapper.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Dialect selects the provider-specific output shape. The only difference
// between dialects is the key under which the property section is nested.
type Dialect string

const (
	// DialectOpenAI nests the property section under "parameters".
	DialectOpenAI Dialect = "openai"

	// DialectClaude nests the property section under "input_schema".
	DialectClaude Dialect = "claude"
)

// Key returns the envelope key for the dialect. Every dialect other than
// claude, including the zero value, uses "parameters".
func (d Dialect) Key() string {
	if d == DialectClaude {
		return "input_schema"
	}
	return "parameters"
}

// TypeSet is a deduplicated set of schema type tokens. An empty set means
// "no constraint" and is omitted from output entirely.
type TypeSet []string

// Contains reports whether the set includes the given token.
func (t TypeSet) Contains(token string) bool {
	for _, tok := range t {
		if tok == token {
			return true
		}
	}
	return false
}

// MarshalJSON emits a single token as a scalar string and several tokens as
// an array, matching the scalar collapse rule for unions.
func (t TypeSet) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// Property is the emitted schema for a single parameter.
type Property struct {
	// Type is the token set for the parameter; empty means no constraint.
	Type TypeSet

	// Description is always present, synthesized when no metadata supplied one.
	Description string

	// Enum is the allowed value list, nil when the parameter is not
	// enumerated. Null members are filtered at emission time.
	Enum []any

	// Default is the declared default value. HasDefault distinguishes an
	// absent default from an explicit null, which is a legitimate default.
	Default    any
	HasDefault bool
}

// MarshalJSON writes the property fields in a fixed order: type,
// description, enum, default. Type is omitted when unconstrained, enum when
// absent, and default when none was supplied.
func (p Property) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	if len(p.Type) > 0 {
		if err := writeField(&buf, &first, "type", p.Type); err != nil {
			return nil, err
		}
	}
	if err := writeField(&buf, &first, "description", p.Description); err != nil {
		return nil, err
	}
	if p.Enum != nil {
		filtered := make([]any, 0, len(p.Enum))
		for _, v := range p.Enum {
			if v != nil {
				filtered = append(filtered, v)
			}
		}
		if err := writeField(&buf, &first, "enum", filtered); err != nil {
			return nil, err
		}
	}
	if p.HasDefault {
		if err := writeField(&buf, &first, "default", p.Default); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeField appends a comma-separated `"key":value` pair to buf.
func writeField(buf *bytes.Buffer, first *bool, key string, value any) error {
	if !*first {
		buf.WriteByte(',')
	}
	*first = false

	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')

	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(v)
	return nil
}

// Properties is a name-to-property mapping that preserves insertion order,
// so emitted schemas list parameters in declaration order.
type Properties struct {
	names []string
	props map[string]Property
}

// NewProperties returns an empty ordered property map.
func NewProperties() *Properties {
	return &Properties{props: make(map[string]Property)}
}

// Set adds or replaces the property for name. A replaced property keeps its
// original position.
func (p *Properties) Set(name string, prop Property) {
	if p.props == nil {
		p.props = make(map[string]Property)
	}
	if _, exists := p.props[name]; !exists {
		p.names = append(p.names, name)
	}
	p.props[name] = prop
}

// Get returns the property for name.
func (p *Properties) Get(name string) (Property, bool) {
	if p == nil || p.props == nil {
		return Property{}, false
	}
	prop, ok := p.props[name]
	return prop, ok
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// MarshalJSON emits the properties as a JSON object in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	if p != nil {
		for _, name := range p.names {
			if err := writeField(&buf, &first, name, p.props[name]); err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ObjectSchema is the property section of a schema document.
type ObjectSchema struct {
	// Properties maps parameter names to their schemas in declaration order.
	Properties *Properties

	// Required holds the names of required parameters. Set semantics; the
	// builder emits it sorted and deduplicated, but order carries no meaning.
	Required []string
}

// MarshalJSON emits the object schema with properties and required always
// present, even when empty.
func (s ObjectSchema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	if err := writeField(&buf, &first, "type", TypeObject); err != nil {
		return nil, err
	}

	props := s.Properties
	if props == nil {
		props = NewProperties()
	}
	if err := writeField(&buf, &first, "properties", props); err != nil {
		return nil, err
	}

	required := s.Required
	if required == nil {
		required = []string{}
	}
	if err := writeField(&buf, &first, "required", required); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is the complete schema for one callable.
type Document struct {
	// Name is the callable identifier.
	Name string

	// Description is the callable's documentation text, omitted when empty.
	Description string

	// Dialect selects the envelope key for the property section.
	Dialect Dialect

	// Parameters is the property section.
	Parameters ObjectSchema
}

// MarshalJSON emits the document with the property section nested under the
// dialect's envelope key.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	if err := writeField(&buf, &first, "name", d.Name); err != nil {
		return nil, err
	}
	if d.Description != "" {
		if err := writeField(&buf, &first, "description", d.Description); err != nil {
			return nil, err
		}
	}
	if err := writeField(&buf, &first, d.Dialect.Key(), d.Parameters); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// sortedSet returns the keys of set sorted ascending.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
