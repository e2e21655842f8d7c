package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	funcschema "github.com/funcschema/go-funcschema"
	"github.com/funcschema/go-funcschema/schema"
	"github.com/funcschema/go-funcschema/typeexpr"
)

// Manifest is a functions.yaml file: a list of function declarations.
type Manifest struct {
	Functions []FunctionSpec `yaml:"functions"`
}

// FunctionSpec declares one function.
type FunctionSpec struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Params      []ParamSpec `yaml:"params,omitempty"`
}

// ParamSpec declares one parameter.
//
// Type accepts the tokens string, boolean (bool), integer (int), number
// (float), array (list), object (map), and any; an empty type is treated as
// any. A non-empty literal list overrides the type token. The optional flag
// wraps the type in an optional union.
type ParamSpec struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type,omitempty"`
	Optional    bool         `yaml:"optional,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Enum        []string     `yaml:"enum,omitempty"`
	Literal     []any        `yaml:"literal,omitempty"`
	Default     DefaultValue `yaml:"default,omitempty"`
}

// DefaultValue distinguishes an absent default from an explicit null, which
// is a legitimate default value.
type DefaultValue struct {
	value any
	set   bool
}

// UnmarshalYAML records that a default was declared, even when its value is
// null.
func (d *DefaultValue) UnmarshalYAML(node *yaml.Node) error {
	d.set = true
	return node.Decode(&d.value)
}

// Get returns the declared default and whether one was declared at all.
func (d DefaultValue) Get() (any, bool) {
	return d.value, d.set
}

// Load reads and parses a manifest from the given path. If the path is a
// directory, it looks for functions.yaml or functions.yml in that directory.
func Load(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	manifestPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "functions.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			manifestPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "functions.yml")
			if _, err := os.Stat(ymlPath); err != nil {
				return nil, fmt.Errorf("no functions.yaml or functions.yml found in %s", path)
			}
			manifestPath = ymlPath
		}
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return Parse(data)
}

// Parse parses manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// Resolve converts the declarations into Function values. Unlike schema
// derivation, which never fails, manifests are configuration and are
// validated: empty names and unknown type tokens are errors.
func (m *Manifest) Resolve() ([]funcschema.Function, error) {
	functions := make([]funcschema.Function, 0, len(m.Functions))
	for _, fs := range m.Functions {
		if fs.Name == "" {
			return nil, fmt.Errorf("%w: function with empty name", funcschema.ErrInvalidManifest)
		}

		params := make([]schema.Param, 0, len(fs.Params))
		for _, ps := range fs.Params {
			if ps.Name == "" {
				return nil, fmt.Errorf("%w: function %q has a parameter with an empty name", funcschema.ErrInvalidManifest, fs.Name)
			}
			t, err := ps.typeExpression()
			if err != nil {
				return nil, err
			}
			p := schema.NewParam(ps.Name, t)
			if v, ok := ps.Default.Get(); ok {
				p = p.WithDefault(v)
			}
			params = append(params, p)
		}

		functions = append(functions, funcschema.Function{
			Name:   fs.Name,
			Doc:    fs.Description,
			Params: params,
		})
	}
	return functions, nil
}

// typeExpression builds the declared type for the parameter.
func (p ParamSpec) typeExpression() (typeexpr.Type, error) {
	var base typeexpr.Type
	if len(p.Literal) > 0 {
		base = typeexpr.Literal(p.Literal...)
	} else {
		switch p.Type {
		case "string":
			base = typeexpr.String()
		case "boolean", "bool":
			base = typeexpr.Boolean()
		case "integer", "int":
			base = typeexpr.Integer()
		case "number", "float":
			base = typeexpr.Float()
		case "array", "list":
			base = typeexpr.List()
		case "object", "map":
			base = typeexpr.Mapping()
		case "any", "":
			base = typeexpr.Any()
		default:
			return typeexpr.Type{}, fmt.Errorf("%w: unknown type %q for parameter %q", funcschema.ErrInvalidManifest, p.Type, p.Name)
		}
	}

	if p.Optional {
		base = typeexpr.Optional(base)
	}

	var meta []any
	if p.Description != "" {
		meta = append(meta, typeexpr.Doc(p.Description))
	}
	if len(p.Enum) > 0 {
		meta = append(meta, typeexpr.Enum(p.Enum...))
	}
	if len(meta) > 0 {
		base = typeexpr.Annotated(base, meta...)
	}
	return base, nil
}
