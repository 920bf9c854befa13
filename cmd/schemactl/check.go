package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"schema-serializer/internal/mapping"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the schema file for configuration problems",
		Long: `Loads the schema file and reports every problem found: unknown field
or validator types, missing nested schemas, cycles and so on.

Warnings are printed but do not fail the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sf, err := mapping.LoadFile(a.schemaFile)
			if err != nil {
				return err
			}

			a.dump(cmd, "schema file", sf)

			diags := mapping.Validate(sf, mapping.DefaultRegistry())
			out := cmd.OutOrStdout()

			for _, w := range diags.Warnings {
				fmt.Fprintln(out, "warning:", w)
			}

			for _, e := range diags.Errors {
				fmt.Fprintln(out, "error:", e)
			}

			if !diags.IsValid() {
				return errors.Newf("%d problem(s) in %s", len(diags.Errors), a.schemaFile)
			}

			// Declaring catches what the file checks cannot, e.g. invalid
			// validator bounds.
			if _, err := a.schemas(); err != nil {
				return err
			}

			fmt.Fprintf(out, "ok: %d schema(s)\n", len(sf.Schemas))

			return nil
		},
	}
}
