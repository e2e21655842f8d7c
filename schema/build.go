package schema

// Build assembles the schema document for a callable from its documentation
// text and ordered parameter list.
//
// Each parameter is extracted, its property assembled from the resolved base
// type, and its name accumulated into the required set when the extraction
// marked it required. Properties keep declaration order; the required set is
// emitted sorted, but its order carries no meaning.
func Build(name, doc string, params []Param, dialect Dialect) Document {
	props := NewProperties()
	required := make(map[string]struct{})

	for _, p := range params {
		spec := Extract(p)
		props.Set(spec.Name, Property{
			Type:        MapType(spec.BaseType),
			Description: spec.Description,
			Enum:        spec.Enum,
			Default:     spec.Default,
			HasDefault:  spec.HasDefault,
		})
		if spec.Required {
			required[spec.Name] = struct{}{}
		}
	}

	return Document{
		Name:        name,
		Description: doc,
		Dialect:     dialect,
		Parameters: ObjectSchema{
			Properties: props,
			Required:   sortedSet(required),
		},
	}
}
