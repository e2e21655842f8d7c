package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcschema/go-funcschema/typeexpr"
)

func TestExtractDescriptionPriority(t *testing.T) {
	tests := []struct {
		name string
		typ  typeexpr.Type
		want string
	}{
		{
			"marker wins",
			typeexpr.Annotated(typeexpr.String(), typeexpr.Doc("from marker")),
			"from marker",
		},
		{
			"marker wins even when a plain string comes first",
			typeexpr.Annotated(typeexpr.String(), "plain", typeexpr.Doc("from marker")),
			"from marker",
		},
		{
			"first marker wins over later markers",
			typeexpr.Annotated(typeexpr.String(), typeexpr.Doc("first"), typeexpr.Doc("second")),
			"first",
		},
		{
			"plain string fallback",
			typeexpr.Annotated(typeexpr.String(), "plain description"),
			"plain description",
		},
		{
			"empty marker still beats a plain string",
			typeexpr.Annotated(typeexpr.String(), typeexpr.Doc(""), "plain"),
			"",
		},
		{
			"synthesized when no metadata matches",
			typeexpr.Annotated(typeexpr.String(), typeexpr.Enum("a")),
			"The city parameter",
		},
		{
			"synthesized when not annotated",
			typeexpr.String(),
			"The city parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Extract(NewParam("city", tt.typ))
			assert.Equal(t, tt.want, spec.Description)
		})
	}
}

func TestExtractEnum(t *testing.T) {
	t.Run("enumerator metadata in declaration order", func(t *testing.T) {
		spec := Extract(NewParam("unit", typeexpr.Annotated(
			typeexpr.Optional(typeexpr.String()),
			typeexpr.Doc("temp unit"),
			typeexpr.Enum("celsius", "fahrenheit"),
		)))
		assert.Equal(t, []any{"celsius", "fahrenheit"}, spec.Enum)
	})

	t.Run("enumerator wins over a literal base", func(t *testing.T) {
		spec := Extract(NewParam("unit", typeexpr.Annotated(
			typeexpr.Literal("x", "y"),
			typeexpr.Enum("a", "b"),
		)))
		assert.Equal(t, []any{"a", "b"}, spec.Enum)
	})

	t.Run("literal base supplies values including nil", func(t *testing.T) {
		spec := Extract(NewParam("mode", typeexpr.Literal("fast", "slow", nil)))
		assert.Equal(t, []any{"fast", "slow", nil}, spec.Enum)
	})

	t.Run("annotated literal base still supplies values", func(t *testing.T) {
		spec := Extract(NewParam("mode", typeexpr.Annotated(
			typeexpr.Literal("fast", "slow"),
			typeexpr.Doc("speed"),
		)))
		assert.Equal(t, []any{"fast", "slow"}, spec.Enum)
	})

	t.Run("no enum otherwise", func(t *testing.T) {
		spec := Extract(NewParam("city", typeexpr.String()))
		assert.Nil(t, spec.Enum)
	})

	t.Run("empty enumerator is skipped", func(t *testing.T) {
		spec := Extract(NewParam("city", typeexpr.Annotated(
			typeexpr.String(),
			typeexpr.Enum(),
		)))
		assert.Nil(t, spec.Enum)
	})
}

func TestExtractBaseType(t *testing.T) {
	spec := Extract(NewParam("unit", typeexpr.Annotated(
		typeexpr.Optional(typeexpr.String()),
		typeexpr.Doc("temp unit"),
	)))
	assert.Equal(t, typeexpr.KindUnion, spec.BaseType.Kind())

	// Nested annotation wrappers resolve down to the effective base.
	spec = Extract(NewParam("x", typeexpr.Annotated(
		typeexpr.Annotated(typeexpr.Integer(), "inner"),
		typeexpr.Doc("outer"),
	)))
	assert.Equal(t, typeexpr.KindInteger, spec.BaseType.Kind())
	assert.Equal(t, "outer", spec.Description)
}

func TestExtractDefault(t *testing.T) {
	t.Run("no default", func(t *testing.T) {
		spec := Extract(NewParam("city", typeexpr.String()))
		assert.False(t, spec.HasDefault)
		assert.Nil(t, spec.Default)
	})

	t.Run("default carried through unchanged", func(t *testing.T) {
		spec := Extract(NewParam("unit", typeexpr.String()).WithDefault("celsius"))
		require.True(t, spec.HasDefault)
		assert.Equal(t, "celsius", spec.Default)
	})

	t.Run("explicit nil default is distinct from absent", func(t *testing.T) {
		spec := Extract(NewParam("unit", typeexpr.Optional(typeexpr.String())).WithDefault(nil))
		assert.True(t, spec.HasDefault)
		assert.Nil(t, spec.Default)
	})
}

func TestExtractRequired(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		want  bool
	}{
		{
			"plain type without default",
			NewParam("count", typeexpr.Integer()),
			true,
		},
		{
			"plain type with default",
			NewParam("count", typeexpr.Integer()).WithDefault(1),
			false,
		},
		{
			"optional type without default",
			NewParam("unit", typeexpr.Optional(typeexpr.String())),
			false,
		},
		{
			"optional type with default",
			NewParam("unit", typeexpr.Optional(typeexpr.String())).WithDefault("celsius"),
			false,
		},
		{
			"annotated optional without default",
			NewParam("unit", typeexpr.Annotated(typeexpr.Optional(typeexpr.String()), typeexpr.Doc("x"))),
			false,
		},
		{
			"unconstrained type without default",
			NewParam("data", typeexpr.Any()),
			true,
		},
		{
			"unknown type without default",
			NewParam("blob", typeexpr.Unknown()),
			true,
		},
		{
			"literal with a null member",
			NewParam("mode", typeexpr.Literal("fast", nil)),
			false,
		},
		{
			"literal with a null member and a default",
			NewParam("mode", typeexpr.Literal("fast", nil)).WithDefault("fast"),
			false,
		},
		{
			"non-null literal without default",
			NewParam("mode", typeexpr.Literal("fast", "slow")),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Extract(tt.param)
			assert.Equal(t, tt.want, spec.Required)
		})
	}
}

// A literal whose value set is entirely non-null stays required even when a
// default value is supplied. This diverges from the general has-default rule
// and is preserved deliberately; the test pins the behavior so a change to
// it is a conscious decision.
func TestExtractRequiredNonNullLiteralIgnoresDefault(t *testing.T) {
	spec := Extract(NewParam("mode", typeexpr.Literal("fast", "slow")).WithDefault("fast"))

	assert.True(t, spec.Required)
	assert.True(t, spec.HasDefault)
}
