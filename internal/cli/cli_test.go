package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "graphql-schema", cmd.Use)

	for _, name := range []string{"print", "validate"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("no-color"))

	printCmd, _, err := cmd.Find([]string{"print"})
	require.NoError(t, err)
	output := printCmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}

func TestPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewPrintCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join("testdata", "people.yaml")})

	require.NoError(t, cmd.Execute())
	newGolden(t).Assert(t, "people", buf.Bytes())
}

func TestPrint_output(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.graphql")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewPrintCommand(&RootOptions{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--output", out, filepath.Join("testdata", "people.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stdout.String())

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	newGolden(t).Assert(t, "people", written)
}

func TestPrint_verbose(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--verbose", "print", filepath.Join("testdata", "people.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "DBG mounted container")
	assert.Contains(t, stderr.String(), "container=Person")
	assert.Contains(t, stderr.String(), "schema built")
	assert.NotContains(t, stdout.String(), "mounted container")
}

func TestPrint_quietByDefault(t *testing.T) {
	stderr := &bytes.Buffer{}
	cmd := NewPrintCommand(&RootOptions{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{filepath.Join("testdata", "people.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stderr.String())
}

func TestPrint_invalidSchema(t *testing.T) {
	path := writeDefinition(t, "types:\n  Query:\n    fields:\n      color: Color\n  Color:\n    kind: input\n    fields: {red: Boolean}\n")

	cmd := NewPrintCommand(&RootOptions{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), `Query.color: "Color" is not an output type`)
}

func TestValidate(t *testing.T) {
	path := filepath.Join("testdata", "people.yaml")

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "✓ "+path+" is valid (6 types)\n", buf.String())
}

func TestValidate_listsEveryError(t *testing.T) {
	path := writeDefinition(t, `
types:
  Color:
    kind: enum
    fields:
      red: String
  Empty: {}
  Query:
    fields:
      color: Color
`)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out := buf.String()
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, `  configuration_error: proxy "String" cannot be mounted in container "Color"`)
	assert.Contains(t, out, `  schema_validation_error: object type "Empty" declares no fields`)
	assert.Contains(t, out, `  schema_validation_error: Query.color: "Color" is not an output type`)
}

func TestValidate_missingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "failed to load definition")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "boom", assert.AnError)))
}
