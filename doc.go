// Package funcschema derives function-calling schemas for large-language-model
// providers from declared parameter lists.
//
// Providers such as OpenAI and Anthropic accept tool definitions as a JSON
// schema describing the tool's inputs. Writing those schemas by hand is
// repetitive and drifts from the code; funcschema generates them from a
// Function value that carries the callable's name, documentation text, and
// typed parameters in declaration order.
//
// # Getting started
//
//	fn := funcschema.Function{
//	    Name: "get_weather",
//	    Doc:  "Returns the weather for the given city.",
//	    Params: []funcschema.Param{
//	        funcschema.NewParam("city", typeexpr.Annotated(
//	            typeexpr.String(),
//	            typeexpr.Doc("The city to get the weather for"),
//	        )),
//	        funcschema.NewParam("unit", typeexpr.Annotated(
//	            typeexpr.Optional(typeexpr.String()),
//	            typeexpr.Doc("The unit to return the temperature in"),
//	            typeexpr.Enum("celsius", "fahrenheit"),
//	        )).WithDefault("celsius"),
//	    },
//	}
//
//	doc := funcschema.GetFunctionSchema(fn)                                      // openai shape
//	doc = funcschema.GetFunctionSchema(fn, funcschema.WithDialect(funcschema.DialectClaude))
//
// The two dialects differ only in the envelope key of the property section:
// "parameters" for openai (and any unrecognized dialect), "input_schema" for
// claude.
//
// # Packages
//
//   - typeexpr models declared types as a closed tagged union with
//     duck-typed annotation metadata.
//   - schema holds the type mapper, the parameter extractor, the document
//     builder, and best-effort argument validation.
//   - manifest loads function declarations from YAML.
//   - registry keeps registered functions and their per-dialect schemas,
//     with optional slog logging and OpenTelemetry instrumentation.
//
// Schema derivation is a pure function of its inputs: no I/O, no shared
// state, safe to call concurrently.
package funcschema
