// Package resolver validates and normalizes flat option maps against a
// declared schema.
//
// A Resolver accumulates rules through its setters:
//
//	r := resolver.New(resolver.DefaultConfig())
//	r.SetDefaults(map[string]any{"host": "localhost", "port": 8080})
//	r.SetRequired("name")
//	r.SetTypes(map[string]string{"port": "int"})
//	r.SetCallback("host", func(m map[string]any) any { ... })
//
// and Resolve runs the pipeline against an input map:
//
//  1. Reject keys that are neither defaulted nor required.
//  2. Reject descriptions for unknown keys (always fatal).
//  3. Overlay the input on the defaults.
//  4. Reject required keys that are still missing.
//  5. Check declared types.
//  6. Replace values through their callbacks.
//
// # Merge semantics
//
// SetDefaults and SetRequired add to what is registered; SetTypes and
// SetDescriptions replace the whole registry. Merge folds another
// Resolver's required keys, defaults, types and callbacks into the receiver.
//
// # Ordering
//
// Allowed keys are the defaulted keys in registration order followed by the
// required-only keys. Keys added by a single SetDefaults call are registered
// in lexical order. Input keys are visited in lexical order, and callbacks
// run in the order of the resolved map: defaulted keys first, then
// input-only keys.
//
// # Type names
//
// Primitive values match by tag: "bool", "int", "float64", "string",
// "map", "slice", "nil" and so on. Structs and pointers match by Go type
// string ("time.Time", "*config.TLS") or by a name bound with RegisterType,
// which also covers interfaces.
//
// # Errors
//
// Every failure is an *InvalidMap wrapping ErrInvalidMap. With
// Config.IgnoreErrors set, failures other than unknown descriptions are
// collected in Errors() and the offending keys are dropped instead.
package resolver
