package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"map-resolver/internal/schema"
	"map-resolver/resolver"
)

type describeOptions struct {
	format string
}

func newDescribeCmd(root *rootOptions) *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the options declared by the schema",
		Long: `Describe lists every allowed option with its type, default and description.

Formats:
  table     aligned columns (default)
  markdown  a Markdown table for documentation
  yaml      a normalized schema file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := root.loadResolver(false)
			if err != nil {
				return err
			}

			return renderDefinitions(cmd.OutOrStdout(), opts.format, r.Definitions())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, markdown, yaml)")

	return cmd
}

func renderDefinitions(w io.Writer, format string, defs *resolver.DefinitionSet) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTYPE\tREQUIRED\tDEFAULT\tDESCRIPTION")
		fmt.Fprintln(tw, "----\t----\t--------\t-------\t-----------")

		for d := range defs.Each() {
			fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n",
				d.Name(), typeColumn(d), d.Required(), defaultColumn(d), d.Description())
		}

		return tw.Flush()
	case "markdown":
		fmt.Fprintln(w, "| Name | Type | Required | Default | Description |")
		fmt.Fprintln(w, "|------|------|----------|---------|-------------|")

		for d := range defs.Each() {
			fmt.Fprintf(w, "| `%s` | %s | %t | `%s` | %s |\n",
				d.Name(), typeColumn(d), d.Required(), defaultColumn(d), d.Description())
		}

		return nil
	case "yaml":
		data, err := schema.Marshal(schema.FromDefinitions(defs))
		if err != nil {
			return err
		}

		_, err = w.Write(data)

		return err
	default:
		return fmt.Errorf("unknown format %q (want table, markdown or yaml)", format)
	}
}

func typeColumn(d resolver.Definition) string {
	if types := d.Types(); len(types) > 0 {
		return strings.Join(types, "|")
	}

	return "any"
}

func defaultColumn(d resolver.Definition) string {
	switch {
	case d.Required() && d.Default() == nil:
		return "-"
	case d.Default() == nil:
		return "null"
	default:
		return fmt.Sprintf("%v", d.Default())
	}
}
