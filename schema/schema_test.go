package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectKey(t *testing.T) {
	assert.Equal(t, "parameters", DialectOpenAI.Key())
	assert.Equal(t, "input_schema", DialectClaude.Key())

	// Anything else, including the zero value, uses the default envelope.
	assert.Equal(t, "parameters", Dialect("").Key())
	assert.Equal(t, "parameters", Dialect("mistral").Key())
}

func TestTypeSetMarshal(t *testing.T) {
	tests := []struct {
		name string
		set  TypeSet
		want string
	}{
		{"single token collapses to scalar", TypeSet{"string"}, `"string"`},
		{"multiple tokens stay a list", TypeSet{"string", "number"}, `["string","number"]`},
		{"empty set is an empty list", TypeSet{}, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.set)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestTypeSetContains(t *testing.T) {
	set := TypeSet{TypeString, TypeNumber}
	assert.True(t, set.Contains(TypeString))
	assert.False(t, set.Contains(TypeBoolean))
	assert.False(t, TypeSet(nil).Contains(TypeString))
}

func TestPropertyMarshal(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		want string
	}{
		{
			"type and description only",
			Property{Type: TypeSet{TypeString}, Description: "city name"},
			`{"type":"string","description":"city name"}`,
		},
		{
			"no type constraint omits the type key",
			Property{Description: "anything goes"},
			`{"description":"anything goes"}`,
		},
		{
			"enum filters null members",
			Property{Type: TypeSet{TypeString}, Description: "mode", Enum: []any{"fast", nil, "slow"}},
			`{"type":"string","description":"mode","enum":["fast","slow"]}`,
		},
		{
			"all-null enum emits an empty list",
			Property{Description: "mode", Enum: []any{nil}},
			`{"description":"mode","enum":[]}`,
		},
		{
			"default is emitted only when supplied",
			Property{Type: TypeSet{TypeNumber}, Description: "count", Default: 3, HasDefault: true},
			`{"type":"number","description":"count","default":3}`,
		},
		{
			"null default is a legitimate value",
			Property{Type: TypeSet{TypeString}, Description: "unit", Default: nil, HasDefault: true},
			`{"type":"string","description":"unit","default":null}`,
		},
		{
			"token list marshals as array",
			Property{Type: TypeSet{TypeString, TypeNumber}, Description: "id"},
			`{"type":["string","number"],"description":"id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestPropertiesPreserveInsertionOrder(t *testing.T) {
	props := NewProperties()
	props.Set("city", Property{Type: TypeSet{TypeString}, Description: "a"})
	props.Set("unit", Property{Type: TypeSet{TypeString}, Description: "b"})
	props.Set("count", Property{Type: TypeSet{TypeNumber}, Description: "c"})

	assert.Equal(t, []string{"city", "unit", "count"}, props.Names())
	assert.Equal(t, 3, props.Len())

	// Replacing keeps the original position.
	props.Set("unit", Property{Type: TypeSet{TypeString}, Description: "replaced"})
	assert.Equal(t, []string{"city", "unit", "count"}, props.Names())

	got, err := json.Marshal(props)
	require.NoError(t, err)
	assert.Equal(t,
		`{"city":{"type":"string","description":"a"},"unit":{"type":"string","description":"replaced"},"count":{"type":"number","description":"c"}}`,
		string(got))
}

func TestPropertiesGet(t *testing.T) {
	props := NewProperties()
	props.Set("city", Property{Description: "x"})

	prop, ok := props.Get("city")
	require.True(t, ok)
	assert.Equal(t, "x", prop.Description)

	_, ok = props.Get("missing")
	assert.False(t, ok)
}

func TestObjectSchemaMarshalAlwaysEmitsSections(t *testing.T) {
	got, err := json.Marshal(ObjectSchema{})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"object","properties":{},"required":[]}`, string(got))
}

func TestDocumentMarshal(t *testing.T) {
	props := NewProperties()
	props.Set("city", Property{Type: TypeSet{TypeString}, Description: "city name"})

	doc := Document{
		Name:        "get_weather",
		Description: "Returns the weather.",
		Dialect:     DialectOpenAI,
		Parameters:  ObjectSchema{Properties: props, Required: []string{"city"}},
	}

	got, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"get_weather","description":"Returns the weather.","parameters":{"type":"object","properties":{"city":{"type":"string","description":"city name"}},"required":["city"]}}`,
		string(got))
}

func TestDocumentMarshalOmitsEmptyDescription(t *testing.T) {
	doc := Document{Name: "noop", Dialect: DialectClaude}

	got, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"noop","input_schema":{"type":"object","properties":{},"required":[]}}`,
		string(got))
}
