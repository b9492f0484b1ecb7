package schema

import (
	"fmt"

	"map-resolver/internal/common"
	"map-resolver/resolver"
)

// Build validates f and creates a Resolver from it. A nil registry means
// DefaultTransforms. f.IgnoreErrors turns on lenient mode in addition to
// config.IgnoreErrors.
func Build(f *File, registry *TransformRegistry, config resolver.Config) (*resolver.Resolver, error) {
	if registry == nil {
		registry = DefaultTransforms()
	}

	diags := Validate(f, registry)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid schema: %w", diags.Error())
	}

	config.IgnoreErrors = config.IgnoreErrors || f.IgnoreErrors
	r := resolver.New(config)

	types := map[string]string{}
	descriptions := map[string]string{}

	for i := range f.Options {
		opt := &f.Options[i]
		if !opt.IsAllowed() {
			continue
		}

		// One call per option keeps document order.
		if opt.HasDefault {
			r.SetDefaults(map[string]any{opt.Name: opt.Default})
		}

		if opt.Required {
			r.SetRequired(opt.Name)
		}

		if opt.Type != "" {
			types[opt.Name] = opt.Type
		}

		if opt.Description != "" {
			descriptions[opt.Name] = opt.Description
		}

		if opt.Transform != "" {
			r.SetCallback(opt.Name, registry.Callback(opt.Transform, opt.Name))
		}
	}

	r.SetTypes(types)
	r.SetDescriptions(descriptions)

	return r, nil
}

// FromDefinitions exports definitions as a schema file. Transforms are not
// part of definitions and are left empty. A required key with a nil default
// is exported without a default.
func FromDefinitions(defs *resolver.DefinitionSet) *File {
	f := &File{Version: CurrentVersion}

	for d := range defs.Each() {
		opt := Option{
			Name:        d.Name(),
			Default:     d.Default(),
			HasDefault:  !d.Required() || d.Default() != nil,
			Required:    d.Required(),
			Description: d.Description(),
		}

		if types := d.Types(); !common.IsEmpty(types) {
			opt.Type = types[0]
		}

		f.Options = append(f.Options, opt)
	}

	return f
}
