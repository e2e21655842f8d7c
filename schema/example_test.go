package schema_test

import (
	"encoding/json"
	"fmt"

	"github.com/funcschema/go-funcschema/schema"
	"github.com/funcschema/go-funcschema/typeexpr"
)

// Example demonstrates deriving a schema document from a parameter list.
func Example() {
	params := []schema.Param{
		schema.NewParam("timezone", typeexpr.Annotated(
			typeexpr.String(),
			typeexpr.Doc("IANA timezone name"),
		)),
	}

	doc := schema.Build("get_time", "Returns the current time.", params, schema.DialectOpenAI)

	raw, _ := json.Marshal(doc)
	fmt.Println(string(raw))

	// Output: {"name":"get_time","description":"Returns the current time.","parameters":{"type":"object","properties":{"timezone":{"type":"string","description":"IANA timezone name"}},"required":["timezone"]}}
}

// ExampleMapType demonstrates the type token mapping.
func ExampleMapType() {
	fmt.Println(schema.MapType(typeexpr.String()))
	fmt.Println(schema.MapType(typeexpr.Optional(typeexpr.Integer())))
	fmt.Println(schema.MapType(typeexpr.Union(typeexpr.String(), typeexpr.Boolean())))

	// Output:
	// [string]
	// [number]
	// [string boolean]
}

// ExampleDocument_Validate demonstrates checking call arguments against a
// derived schema.
func ExampleDocument_Validate() {
	params := []schema.Param{
		schema.NewParam("city", typeexpr.String()),
		schema.NewParam("unit", typeexpr.Annotated(
			typeexpr.Optional(typeexpr.String()),
			typeexpr.Enum("celsius", "fahrenheit"),
		)).WithDefault("celsius"),
	}
	doc := schema.Build("get_weather", "", params, schema.DialectOpenAI)

	if err := doc.Validate(map[string]any{"city": "Berlin", "unit": "celsius"}); err != nil {
		fmt.Println("invalid:", err)
	} else {
		fmt.Println("valid arguments")
	}

	if err := doc.Validate(map[string]any{"unit": "celsius"}); err != nil {
		fmt.Println("invalid:", err)
	}

	// Output:
	// valid arguments
	// invalid: required parameter "city" is missing
}
