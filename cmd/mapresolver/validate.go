package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"map-resolver/internal/schema"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the schema file",
		Long: `Validate checks the schema file for authoring mistakes.

Checks:
  - YAML syntax and field names are valid
  - Option names are present and unique
  - Transforms exist
  - Options can actually be used (warnings)

Examples:
  mapresolver validate
  mapresolver validate --schema config/schema.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Validating %s...\n\n", root.schemaFile)

			f, err := schema.LoadFile(root.schemaFile)
			if err != nil {
				fmt.Fprintf(out, "  %s Schema syntax valid\n", crossMark)
				return err
			}

			fmt.Fprintf(out, "  %s Schema syntax valid\n", checkMark)

			diags := schema.Validate(f, schema.DefaultTransforms())
			for _, d := range diags.Warnings {
				fmt.Fprintf(out, "  ! %s\n", d.String())
			}

			for _, d := range diags.Errors {
				fmt.Fprintf(out, "  %s %s\n", crossMark, d.String())
			}

			if diags.HasErrors() {
				return fmt.Errorf("schema %s has %d error(s)", root.schemaFile, len(diags.Errors))
			}

			fmt.Fprintf(out, "  %s Options declared: %d\n", checkMark, len(f.Options))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Schema is valid.")

			return nil
		},
	}
}
