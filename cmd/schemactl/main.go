// Package main provides the schemactl CLI.
//
// schemactl loads declarative schemas from a YAML file and uses them to:
//   - check the file for configuration problems
//   - describe the schemas and their fields
//   - serialize JSON objects into the schema's output form
//   - validate JSON input and print the restored records
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
