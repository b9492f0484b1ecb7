// Package schema provides the YAML schema file format, parsing, validation,
// the transform registry and the builder that turns a schema file into a
// resolver.Resolver.
//
// # Schema Overview
//
// A schema file has the following structure:
//
//	version: "1"
//	ignore_errors: false
//	options:
//	  - name: host
//	    default: localhost
//	    type: string
//	    description: Address to bind
//	    transform: lower
//	  - name: port
//	    required: true
//	    type: int
//	  - name: token
//	    default: null     # explicit nil default
//
// An option is an allowed key when it has a default, is required, or both.
// Options with neither are reported as warnings and left out of the
// resolver. Options are registered in document order, which is the order
// definitions are listed and callbacks run.
//
// # Transform Registry
//
// Transforms are referenced by name. DefaultTransforms provides trim, lower,
// upper and expand_env, all of which leave non-string values untouched.
package schema
