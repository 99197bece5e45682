// Package cli implements the graphql-schema command line.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	NoColor bool
}

// NewRootCommand creates the root command for the graphql-schema CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "graphql-schema",
		Short: "Build GraphQL schemas from YAML definitions",
		Long: `Build GraphQL schemas from YAML definitions.

Types are declared in the order they are printed and fields in the order
they are declared. The schema is validated before it is printed.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log schema building at debug level")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored log output")

	cmd.AddCommand(NewPrintCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}
