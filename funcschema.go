package funcschema

import (
	"github.com/funcschema/go-funcschema/schema"
	"github.com/funcschema/go-funcschema/typeexpr"
)

// Dialect selects the provider-specific output shape.
type Dialect = schema.Dialect

const (
	// DialectOpenAI nests the property section under "parameters".
	DialectOpenAI = schema.DialectOpenAI

	// DialectClaude nests the property section under "input_schema".
	DialectClaude = schema.DialectClaude
)

// Param is one declared parameter of a function.
type Param = schema.Param

// NewParam returns a parameter with the given name and declared type.
func NewParam(name string, t typeexpr.Type) Param {
	return schema.NewParam(name, t)
}

// Function describes a callable: its identifier, documentation text, and
// parameters in declaration order.
type Function struct {
	// Name is the callable identifier used as the schema name.
	Name string

	// Doc is the callable's documentation text, emitted verbatim as the
	// schema description. May be empty.
	Doc string

	// Params are the declared parameters in declaration order.
	Params []Param
}

// GetFunctionSchema returns the function-calling schema document for fn.
// The dialect defaults to openai; pass WithDialect(DialectClaude) for the
// claude envelope.
func GetFunctionSchema(fn Function, opts ...Option) schema.Document {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return schema.Build(fn.Name, fn.Doc, fn.Params, cfg.dialect)
}
