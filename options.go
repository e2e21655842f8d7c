package funcschema

import (
	"github.com/funcschema/go-funcschema/schema"
)

// Option configures schema derivation.
type Option func(*config)

// config holds configuration for a single derivation.
type config struct {
	dialect schema.Dialect
}

// defaultConfig returns the configuration used when no options are given.
func defaultConfig() config {
	return config{dialect: schema.DialectOpenAI}
}

// WithDialect selects the output dialect. Unrecognized dialects fall back to
// the openai envelope key.
func WithDialect(d schema.Dialect) Option {
	return func(c *config) {
		c.dialect = d
	}
}
