package schema

import (
	"fmt"
	"reflect"
)

// Validate checks call arguments against the document's property section.
func (d Document) Validate(args map[string]any) error {
	return d.Parameters.Validate(args)
}

// Validate checks that every required parameter is present and that supplied
// values match their property's type tokens and enumeration. Only the facets
// this system models are checked; arguments without a matching property are
// ignored.
func (s ObjectSchema) Validate(args map[string]any) error {
	for _, name := range s.Required {
		if _, ok := args[name]; !ok {
			return fmt.Errorf("required parameter %q is missing", name)
		}
	}

	for _, name := range s.Properties.Names() {
		value, ok := args[name]
		if !ok {
			continue
		}
		prop, _ := s.Properties.Get(name)
		if err := prop.validate(value); err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
	}
	return nil
}

// validate checks a single value against the property's enum and type set.
func (p Property) validate(value any) error {
	if p.Enum != nil {
		for _, allowed := range p.Enum {
			if equalValue(value, allowed) {
				return nil
			}
		}
		return fmt.Errorf("value %v is not one of the allowed values %v", value, p.Enum)
	}

	if len(p.Type) == 0 {
		return nil
	}
	for _, token := range p.Type {
		if tokenMatches(value, token) {
			return nil
		}
	}
	return fmt.Errorf("expected %v, got %T", p.Type, value)
}

// tokenMatches reports whether the value's runtime kind satisfies the token.
func tokenMatches(value any, token string) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)

	switch token {
	case TypeString:
		return v.Kind() == reflect.String
	case TypeBoolean:
		return v.Kind() == reflect.Bool
	case TypeNumber:
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return true
		}
		return false
	case TypeArray:
		return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
	case TypeObject:
		return v.Kind() == reflect.Map || v.Kind() == reflect.Struct
	default:
		return false
	}
}

// equalValue compares an argument to an enum member. Numeric values are
// compared by magnitude so JSON-decoded float64 arguments match integer
// enum members.
func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// asFloat normalizes any numeric value to float64.
func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
