package schema

// CurrentVersion is the only schema version understood by this package.
const CurrentVersion = "1"

// File represents the root of a YAML schema file.
type File struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// IgnoreErrors builds a lenient resolver.
	IgnoreErrors bool `yaml:"ignore_errors,omitempty"`

	// Options are the declared keys, in document order.
	Options []Option `yaml:"options"`
}

// Option declares one key of the resolved map.
type Option struct {
	// Name is the key in the input and resolved maps.
	Name string `yaml:"name"`

	// Default is the default value. Only meaningful when HasDefault is set,
	// which distinguishes "default: null" from no default at all.
	Default    any  `yaml:"-"`
	HasDefault bool `yaml:"-"`

	// Required keys must be present after defaults are applied.
	Required bool `yaml:"required,omitempty"`

	// Type is the expected type name (e.g. "int", "string", "map").
	Type string `yaml:"type,omitempty"`

	// Description is human-readable documentation for the key.
	Description string `yaml:"description,omitempty"`

	// Transform names a TransformRegistry entry applied to the value.
	Transform string `yaml:"transform,omitempty"`
}

// IsAllowed returns true if the option becomes an allowed key.
func (o *Option) IsAllowed() bool {
	return o.Required || o.HasDefault
}

// Names returns the option names in document order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Options))
	for i := range f.Options {
		names = append(names, f.Options[i].Name)
	}

	return names
}
