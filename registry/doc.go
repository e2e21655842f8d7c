// Package registry keeps registered functions and their derived schemas.
//
// A Registry maps function names to funcschema.Function values and
// pre-builds the schema document for both dialects at registration time, so
// provider adapters can fetch tool definitions without re-deriving them.
// Registrations receive a unique instance ID.
//
//	reg := registry.New(registry.WithLogger(logger))
//	id, err := reg.Register(ctx, fn)
//	doc, err := reg.Schema(ctx, "get_weather", funcschema.DialectClaude)
//
// All operations are thread-safe. Registration events are logged through
// slog, and when an OpenTelemetry meter or tracer is configured the registry
// records counters and spans; when unconfigured, instrumentation is skipped
// silently.
package registry
