package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"map-resolver/internal/common"
	"map-resolver/resolver"
)

type resolveOptions struct {
	input   string
	lenient bool
	output  string
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an input map against the schema",
		Long: `Resolve reads a YAML or JSON mapping and prints the resolved map.

The input is read from --input, or from stdin when --input is empty or "-".
With --lenient, failures are logged and the offending keys are dropped
instead of aborting.

Examples:
  mapresolver resolve --input options.yaml
  mapresolver resolve --lenient --output json < options.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (default stdin)")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "collect failures instead of aborting")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "yaml", "output format (yaml, json, dump)")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootOptions, opts *resolveOptions) error {
	r, err := root.loadResolver(opts.lenient)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, opts.input)
	if err != nil {
		return err
	}

	// JSON documents are valid YAML.
	var input map[string]any
	if err := yaml.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	resolved, err := r.Resolve(input)
	if err != nil {
		var invalid *resolver.InvalidMap
		if errors.As(err, &invalid) {
			printHints(cmd.ErrOrStderr(), invalid)
		}

		return err
	}

	for _, failure := range r.Errors().All() {
		printHints(cmd.ErrOrStderr(), failure)
	}

	return writeOutput(cmd.OutOrStdout(), opts.output, resolved)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return data, nil
}

// printHints writes "did you mean" lines for unknown keys.
func printHints(w io.Writer, err *resolver.InvalidMap) {
	for _, key := range common.SortedKeys(err.Suggestions) {
		fmt.Fprintf(w, "hint: %q is not known, did you mean %q?\n", key, err.Suggestions[key][0])
	}
}

func writeOutput(w io.Writer, format string, resolved map[string]any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(resolved); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(resolved); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case "dump":
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		cfg.Fdump(w, resolved)

		return nil
	default:
		return fmt.Errorf("unknown output format %q (want yaml, json or dump)", format)
	}
}
