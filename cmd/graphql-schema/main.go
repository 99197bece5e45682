// Command graphql-schema builds GraphQL schemas from YAML definitions.
package main

import (
	"os"

	"github.com/llehouerou/go-graphql-schema/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
