package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"map-resolver/internal/schema"
	"map-resolver/resolver"
)

const (
	checkMark = "✓"
	crossMark = "✗"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	schemaFile string
	logLevel   string
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "mapresolver",
		Short: "Resolve option maps against a declarative schema",
		Long: `mapresolver validates option maps against a schema file.

Unknown keys are rejected, defaults are filled in, required keys and
declared types are checked, and transforms are applied.

Examples:
  mapresolver resolve --input options.yaml
  echo '{"name": "api"}' | mapresolver resolve --output json
  mapresolver describe --format markdown
  mapresolver validate --schema schema.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}

			opts.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).
				With().Timestamp().
				Logger()

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.schemaFile, "schema", "s", "schema.yaml", "schema file path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newResolveCmd(opts),
		newDescribeCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadResolver builds a resolver from the schema file.
func (o *rootOptions) loadResolver(lenient bool) (*resolver.Resolver, error) {
	f, err := schema.LoadFile(o.schemaFile)
	if err != nil {
		return nil, err
	}

	o.logger.Debug().
		Str("schema", o.schemaFile).
		Int("options", len(f.Options)).
		Msg("schema loaded")

	return schema.Build(f, nil, resolver.Config{
		IgnoreErrors: lenient,
		Logger:       o.logger,
	})
}
