package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"map-resolver/internal/schema"
)

const serverSchema = `version: "1"
options:
  - name: host
    default: LocalHost
    type: string
    description: Address to bind
    transform: lower
  - name: port
    default: 8080
    type: int
    description: Port to listen on
  - name: name
    required: true
    type: string
    transform: trim
  - name: tags
    default: []
    type: slice
  - name: token
    default: null
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestResolve_YAMLFromStdin(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", serverSchema)

	out, _, err := execute(t, "name: '  Ada '\n", "resolve", "--schema", schemaPath)
	require.NoError(t, err)
	assert.Equal(t, `host: localhost
name: Ada
port: 8080
tags: []
token: null
`, out)
}

func TestResolve_JSONFile(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", serverSchema)
	inputPath := writeFile(t, "input.json", `{"name": "Ada", "port": 9090}`)

	out, _, err := execute(t, "", "resolve", "-s", schemaPath, "--input", inputPath, "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"port": 9090`)
	assert.Contains(t, out, `"host": "localhost"`)
	assert.Contains(t, out, `"token": null`)
}

func TestResolve_Dump(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", serverSchema)

	out, _, err := execute(t, "name: Ada", "resolve", "-s", schemaPath, "-o", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, `(string) (len=9) "localhost"`)
}

func TestResolve_UnknownKeyHint(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", serverSchema)

	out, errOut, err := execute(t, "{name: Ada, prt: 1}", "resolve", "-s", schemaPath)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), `Key(s) "prt" are not known`)
	assert.Contains(t, errOut, `hint: "prt" is not known, did you mean "port"?`)
}

func TestResolve_Lenient(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", serverSchema)

	out, errOut, err := execute(t, "{name: Ada, port: x}", "resolve", "-s", schemaPath, "--lenient")
	require.NoError(t, err)
	assert.Contains(t, out, "port: x")
	assert.Contains(t, errOut, `Type for "port" expected to be "int", got "string"`)
}

func TestResolve_Errors(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", serverSchema)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{"missing schema", "", []string{"resolve", "-s", filepath.Join(t.TempDir(), "none.yaml")}, "failed to read schema file"},
		{"missing input", "", []string{"resolve", "-s", schemaPath, "-i", filepath.Join(t.TempDir(), "none.json")}, "failed to read input file"},
		{"bad input", "[1, 2]", []string{"resolve", "-s", schemaPath}, "failed to parse input"},
		{"bad output", "name: Ada", []string{"resolve", "-s", schemaPath, "-o", "xml"}, `unknown output format "xml"`},
		{"bad log level", "", []string{"resolve", "-s", schemaPath, "--log-level", "loud"}, `invalid log level "loud"`},
		{"required", "port: 1", []string{"resolve", "-s", schemaPath}, `Key(s) "name" are required`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDescribe(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", serverSchema)

	out, _, err := execute(t, "", "describe", "-s", schemaPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[2], "host"))
	assert.Contains(t, lines[2], "Address to bind")
	assert.True(t, strings.HasPrefix(lines[6], "name"))

	out, _, err = execute(t, "", "describe", "-s", schemaPath, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| `host` | string | false | `LocalHost` | Address to bind |")
	assert.Contains(t, out, "| `name` | string | true | `-` |  |")
	assert.Contains(t, out, "| `token` | any | false | `null` |  |")

	out, _, err = execute(t, "", "describe", "-s", schemaPath, "-f", "yaml")
	require.NoError(t, err)

	f, err := schema.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port", "tags", "token", "name"}, f.Names())

	_, _, err = execute(t, "", "describe", "-s", schemaPath, "-f", "html")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := writeFile(t, "schema.yaml", serverSchema)

	out, _, err := execute(t, "", "validate", "-s", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is valid.")
	assert.Contains(t, out, "Options declared: 5")

	invalid := writeFile(t, "schema.yaml", `options:
  - name: host
    default: x
    transform: lowr
  - name: orphan
`)

	out, _, err = execute(t, "", "validate", "-s", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 1 error(s)")
	assert.Contains(t, out, `host: [unknown_transform] unknown transform "lowr" (did you mean "lower"?)`)
	assert.Contains(t, out, "orphan: [unreachable_option]")

	out, _, err = execute(t, "", "validate", "-s", writeFile(t, "schema.yaml", "options: [\n"))
	require.Error(t, err)
	assert.Contains(t, out, crossMark+" Schema syntax valid")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mapresolver dev")
}
