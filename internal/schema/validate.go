package schema

import (
	"fmt"

	"map-resolver/internal/diagnostic"
	"map-resolver/internal/match"
)

// maxSuggestions caps "did you mean" candidates for unknown transforms.
const maxSuggestions = 3

// Validate checks a schema file for authoring mistakes. Errors make the
// file unusable; warnings flag options that behave surprisingly.
func Validate(f *File, registry *TransformRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "schema file is nil", "")
		return res
	}

	if registry == nil {
		registry = NewTransformRegistry()
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported schema version %q, expected %q", f.Version, CurrentVersion), "")
	}

	seen := map[string]struct{}{}

	for i := range f.Options {
		opt := &f.Options[i]

		if opt.Name == "" {
			res.AddError("empty_name", "option name is empty", fmt.Sprintf("options[%d]", i))
			continue
		}

		if _, ok := seen[opt.Name]; ok {
			res.AddError("duplicate_option", fmt.Sprintf("duplicate option %q", opt.Name), opt.Name)
			continue
		}

		seen[opt.Name] = struct{}{}

		if opt.Transform != "" && !registry.Has(opt.Transform) {
			res.AddError("unknown_transform", fmt.Sprintf("unknown transform %q", opt.Transform), opt.Name,
				match.Suggest(opt.Transform, registry.Names(), maxSuggestions)...)
		}

		validateOptionWarnings(res, opt)
	}

	return res
}

func validateOptionWarnings(res *diagnostic.Diagnostics, opt *Option) {
	if opt.Required && opt.HasDefault {
		res.AddWarning("required_with_default",
			"option is required but has a default, so it can never be missing", opt.Name)
	}

	if !opt.IsAllowed() {
		res.AddWarning("unreachable_option",
			"option has neither a default nor required: true and is ignored", opt.Name)
	}
}
