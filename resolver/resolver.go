package resolver

import (
	"maps"
	"reflect"
	"slices"

	"github.com/rs/zerolog"

	"map-resolver/internal/common"
)

// Callback computes the final value of a key from the resolved map.
type Callback func(resolved map[string]any) any

// Config holds configuration for a Resolver.
type Config struct {
	// IgnoreErrors enables lenient mode: failures are collected in Errors()
	// and resolution continues, instead of being returned from Resolve.
	// Unknown description keys are always returned.
	IgnoreErrors bool
	// Logger receives collected failures (warn) and pipeline summaries (debug).
	Logger zerolog.Logger
}

// DefaultConfig returns a strict configuration with logging disabled.
func DefaultConfig() Config {
	return Config{
		IgnoreErrors: false,
		Logger:       zerolog.Nop(),
	}
}

// Resolver accumulates schema rules and resolves input maps against them.
//
// Setters are not safe for concurrent use. Resolve, Definitions and
// ResolveDescriptions never modify the rules and may run concurrently.
type Resolver struct {
	required []string
	// defaultKeys keeps registration order; defaults holds the values.
	defaultKeys  []string
	defaults     map[string]any
	types        map[string]string
	callbacks    map[string]Callback
	descriptions map[string]string
	named        map[string]reflect.Type

	ignoreErrors bool
	errors       *Errors
	logger       zerolog.Logger
}

// New creates a Resolver with no rules.
func New(config Config) *Resolver {
	return &Resolver{
		defaults:     make(map[string]any),
		types:        make(map[string]string),
		callbacks:    make(map[string]Callback),
		descriptions: make(map[string]string),
		named:        make(map[string]reflect.Type),
		ignoreErrors: config.IgnoreErrors,
		errors:       &Errors{},
		logger:       config.Logger,
	}
}

// SetRequired appends names to the required keys.
func (r *Resolver) SetRequired(names ...string) {
	r.required = append(r.required, names...)
}

// SetDefaults merges defaults into the registered ones; keys in defaults
// win. Keys not registered before are appended in lexical order.
func (r *Resolver) SetDefaults(defaults map[string]any) {
	for _, key := range common.SortedKeys(defaults) {
		r.setDefault(key, defaults[key])
	}
}

func (r *Resolver) setDefault(key string, value any) {
	if _, ok := r.defaults[key]; !ok {
		r.defaultKeys = append(r.defaultKeys, key)
	}

	r.defaults[key] = value
}

// SetTypes replaces all type constraints with types.
func (r *Resolver) SetTypes(types map[string]string) {
	r.types = maps.Clone(types)
	if r.types == nil {
		r.types = make(map[string]string)
	}
}

// SetDescriptions replaces all descriptions with descriptions.
func (r *Resolver) SetDescriptions(descriptions map[string]string) {
	r.descriptions = maps.Clone(descriptions)
	if r.descriptions == nil {
		r.descriptions = make(map[string]string)
	}
}

// SetCallback sets the transformation applied to key after type checking.
func (r *Resolver) SetCallback(key string, fn Callback) {
	r.callbacks[key] = fn
}

// RegisterType binds a type name to a Go type. Structured values checked
// against name must be assignable to t, or implement it if t is an interface.
func (r *Resolver) RegisterType(name string, t reflect.Type) {
	r.named[name] = t
}

// Merge folds the required keys, defaults, types, callbacks and registered
// types of other into r. Descriptions, mode and collected errors are not
// merged. Returns r.
func (r *Resolver) Merge(other *Resolver) *Resolver {
	if other == nil {
		return r
	}

	r.required = append(r.required, other.required...)

	for _, key := range other.defaultKeys {
		r.setDefault(key, other.defaults[key])
	}

	maps.Copy(r.types, other.types)
	maps.Copy(r.callbacks, other.callbacks)
	maps.Copy(r.named, other.named)

	return r
}

// AllowedKeys returns the keys with a default, in registration order,
// followed by the required keys without one.
func (r *Resolver) AllowedKeys() []string {
	keys := make([]string, 0, len(r.defaultKeys)+len(r.required))
	keys = append(keys, r.defaultKeys...)
	keys = append(keys, r.required...)

	return common.Unique(keys)
}

// Errors returns the failures collected in lenient mode.
// They accumulate across Resolve calls until Reset.
func (r *Resolver) Errors() *Errors {
	return r.errors
}

// fail applies the error policy: strict mode returns err, lenient mode
// records it and returns nil so resolution continues.
func (r *Resolver) fail(err *InvalidMap) error {
	if !r.ignoreErrors {
		return err
	}

	r.errors.add(err)
	r.logger.Warn().
		Str("kind", err.Kind.String()).
		Strs("keys", err.Keys).
		Msg(err.Message)

	return nil
}

// Resolve validates input against the rules and returns the resolved map.
//
// The pipeline runs in order: unknown keys, unknown description keys,
// default merge, required keys, types, callbacks. In strict mode the first
// failure aborts with an *InvalidMap; in lenient mode failures are recorded
// in Errors() and offending keys are dropped. input is never modified.
func (r *Resolver) Resolve(input map[string]any) (map[string]any, error) {
	allowed := r.AllowedKeys()

	// Input keys are visited in lexical order.
	inputKeys := common.SortedKeys(input)

	if unknown := common.Diff(inputKeys, allowed); len(unknown) > 0 {
		if err := r.fail(unknownKeysError(unknown, allowed)); err != nil {
			return nil, err
		}

		inputKeys = common.Diff(inputKeys, unknown)
	}

	if unknown := common.Diff(common.SortedKeys(r.descriptions), allowed); len(unknown) > 0 {
		return nil, unknownDescriptionsError(unknown, allowed)
	}

	keys := make([]string, 0, len(r.defaultKeys)+len(inputKeys))
	keys = append(keys, r.defaultKeys...)
	keys = append(keys, common.Diff(inputKeys, r.defaultKeys)...)

	resolved := maps.Clone(r.defaults)
	for _, key := range inputKeys {
		resolved[key] = input[key]
	}

	if missing := common.Diff(common.Unique(r.required), keys); len(missing) > 0 {
		if err := r.fail(missingKeysError(missing)); err != nil {
			return nil, err
		}

		// Missing keys are absent from resolved by construction.
		keys = common.Diff(keys, missing)
	}

	for _, key := range keys {
		expected, ok := r.types[key]
		if !ok {
			continue
		}

		if actual, valid := r.matchType(expected, resolved[key]); !valid {
			if err := r.fail(typeMismatchError(key, expected, actual)); err != nil {
				return nil, err
			}
		}
	}

	for _, key := range keys {
		fn, ok := r.callbacks[key]
		if !ok || fn == nil {
			continue
		}

		resolved[key] = fn(maps.Clone(resolved))
	}

	r.logger.Debug().
		Int("keys", len(resolved)).
		Int("callbacks", len(r.callbacks)).
		Msg("map resolved")

	return resolved, nil
}

// Definitions describes every allowed key.
func (r *Resolver) Definitions() *DefinitionSet {
	allowed := r.AllowedKeys()
	defs := make([]Definition, 0, len(allowed))

	for _, key := range allowed {
		var types []string
		if t, ok := r.types[key]; ok {
			types = []string{t}
		}

		defs = append(defs, NewDefinition(
			key,
			r.defaults[key],
			slices.Contains(r.required, key),
			r.descriptions[key],
			types,
		))
	}

	return NewDefinitionSet(defs...)
}

// ResolveDescriptions maps every allowed key to its description, or "" if
// none was set.
func (r *Resolver) ResolveDescriptions() map[string]string {
	allowed := r.AllowedKeys()
	out := make(map[string]string, len(allowed))

	for _, key := range allowed {
		out[key] = r.descriptions[key]
	}

	return out
}
