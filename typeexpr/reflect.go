package typeexpr

import (
	"reflect"
)

// FromValue derives a Type from the dynamic type of v.
// A nil value yields the null type.
func FromValue(v any) Type {
	if v == nil {
		return None()
	}
	return FromGoType(reflect.TypeOf(v))
}

// FromGoType maps a Go type onto the closed type model using reflection.
//
// Pointers become optional types, since a nil pointer is the conventional
// way to express an absent value. Slices and arrays become lists, maps and
// structs become mappings, and interface types become the unconstrained
// type. Anything else (channels, funcs, unsafe pointers) is unresolvable
// and yields the unknown type rather than an error.
func FromGoType(t reflect.Type) Type {
	if t == nil {
		return None()
	}

	if t.Kind() == reflect.Ptr {
		return Optional(FromGoType(t.Elem()))
	}

	switch t.Kind() {
	case reflect.String:
		return String()
	case reflect.Bool:
		return Boolean()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer()
	case reflect.Float32, reflect.Float64:
		return Float()
	case reflect.Slice, reflect.Array:
		return List()
	case reflect.Map, reflect.Struct:
		return Mapping()
	case reflect.Interface:
		return Any()
	default:
		return Unknown()
	}
}
