// Package main provides the CLI entrypoint for mapresolver.
//
// mapresolver resolves YAML or JSON documents against a schema file:
//   - resolve: validate input and fill in defaults
//   - describe: render the declared options
//   - validate: check the schema file itself
package main

func main() {
	Execute()
}
