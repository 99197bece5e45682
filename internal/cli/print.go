package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	schema "github.com/llehouerou/go-graphql-schema"
	"github.com/llehouerou/go-graphql-schema/internal/config"
)

// PrintOptions holds flags for the print command.
type PrintOptions struct {
	Output string
}

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PrintOptions{}

	cmd := &cobra.Command{
		Use:   "print <definition.yaml>",
		Short: "Print the schema in the GraphQL schema definition language",
		Long: `Build the schema described by a YAML definition and print it in the
GraphQL schema definition language, to stdout or to the --output file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true, // Don't print usage on errors
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the schema to this file")

	return cmd
}

func runPrint(rootOpts *RootOptions, opts *PrintOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), rootOpts)

	s, err := buildSchema(path, logger)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), s.String())
		return err
	}

	if err := os.WriteFile(opts.Output, []byte(s.String()), 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write schema", err)
	}
	logger.Info("schema written", slog.String("path", opts.Output), slog.Int("types", len(s.Types())))
	return nil
}

// buildSchema loads the definition at path and builds it.
func buildSchema(path string, logger *slog.Logger) (*schema.Schema, error) {
	def, err := config.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load definition", err)
	}

	s, err := def.Build(logger)
	if err != nil {
		return nil, WrapExitError(ExitFailure, fmt.Sprintf("invalid schema %s", path), err)
	}
	return s, nil
}
