package schema

import (
	"os"
	"sort"
	"strings"

	"map-resolver/resolver"
)

// TransformFunc computes a new value for a single key.
type TransformFunc func(value any) any

// Transform is a named value transformation usable from schema files.
type Transform struct {
	Name        string
	Description string
	Func        TransformFunc
}

// TransformRegistry holds transforms and provides lookup by name.
type TransformRegistry struct {
	transforms map[string]*Transform
}

// NewTransformRegistry creates a new empty transform registry.
func NewTransformRegistry() *TransformRegistry {
	return &TransformRegistry{
		transforms: make(map[string]*Transform),
	}
}

// DefaultTransforms returns a registry with the builtin string transforms.
func DefaultTransforms() *TransformRegistry {
	r := NewTransformRegistry()
	r.Add(&Transform{Name: "trim", Description: "Removes leading and trailing white space", Func: stringOnly(strings.TrimSpace)})
	r.Add(&Transform{Name: "lower", Description: "Converts to lower case", Func: stringOnly(strings.ToLower)})
	r.Add(&Transform{Name: "upper", Description: "Converts to upper case", Func: stringOnly(strings.ToUpper)})
	r.Add(&Transform{Name: "expand_env", Description: "Replaces ${VAR} and $VAR with environment values", Func: stringOnly(os.ExpandEnv)})

	return r
}

// stringOnly adapts a string function; other values pass through unchanged.
func stringOnly(fn func(string) string) TransformFunc {
	return func(value any) any {
		s, ok := value.(string)
		if !ok {
			return value
		}

		return fn(s)
	}
}

// Add adds a transform to the registry, replacing one with the same name.
func (r *TransformRegistry) Add(t *Transform) {
	r.transforms[t.Name] = t
}

// Get returns a transform by name, or nil if not found.
func (r *TransformRegistry) Get(name string) *Transform {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *TransformRegistry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names, sorted.
func (r *TransformRegistry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Callback returns a resolver callback applying the named transform to key,
// or nil if the transform is unknown.
func (r *TransformRegistry) Callback(name, key string) resolver.Callback {
	t := r.Get(name)
	if t == nil || t.Func == nil {
		return nil
	}

	return func(resolved map[string]any) any {
		return t.Func(resolved[key])
	}
}
