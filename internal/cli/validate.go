package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	schema "github.com/llehouerou/go-graphql-schema"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definition.yaml>",
		Short: "Check that a YAML definition builds a valid schema",
		Long: `Build the schema described by a YAML definition and report every
problem found, without printing the schema.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Errors are listed on stdout
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), rootOpts)
	w := cmd.OutOrStdout()

	s, err := buildSchema(path, logger)
	if err != nil {
		outputValidationErrors(w, err)
		return err
	}

	fmt.Fprintf(w, "✓ %s is valid (%d types)\n", path, len(s.Types()))
	return nil
}

// outputValidationErrors lists schema errors one per line with their code.
func outputValidationErrors(w io.Writer, err error) {
	fmt.Fprintln(w, "✗ Validation failed")
	fmt.Fprintln(w)

	var errs schema.Errors
	if !errors.As(err, &errs) {
		fmt.Fprintf(w, "  %v\n", err)
		return
	}
	for _, e := range errs {
		fmt.Fprintf(w, "  %s: %s\n", e.GetCode(), e.Message)
	}
}
