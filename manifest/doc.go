// Package manifest loads function declarations from YAML.
//
// A functions.yaml file declares callables and their parameters so tool
// definitions can live in configuration instead of code:
//
//	functions:
//	  - name: get_weather
//	    description: Returns the weather for the given city.
//	    params:
//	      - name: city
//	        type: string
//	        description: The city to get the weather for
//	      - name: unit
//	        type: string
//	        optional: true
//	        description: The unit to return the temperature in
//	        enum: [celsius, fahrenheit]
//	        default: celsius
//
// Load reads a file (or a directory containing functions.yaml), and
// Manifest.Resolve converts the declarations into funcschema.Function
// values. An explicit `default: null` is kept distinct from an absent
// default. Manifests are configuration, so malformed declarations are
// reported as errors wrapping funcschema.ErrInvalidManifest rather than
// degraded silently.
package manifest
