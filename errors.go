package funcschema

import "errors"

// Sentinel errors shared by the supporting packages. Schema derivation
// itself never fails; these cover the registry and manifest surfaces.
// They can be matched with errors.Is().
var (
	// ErrFunctionNotFound indicates the requested function is not registered.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrDuplicateFunction indicates a function with the same name is
	// already registered.
	ErrDuplicateFunction = errors.New("duplicate function")

	// ErrInvalidManifest indicates a function manifest is malformed or
	// references an unknown type token.
	ErrInvalidManifest = errors.New("invalid manifest")
)
