package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"schema-serializer/serializer"
)

func newValidateCmd(a *app) *cobra.Command {
	var many bool

	cmd := &cobra.Command{
		Use:   "validate SCHEMA [input.json]",
		Short: "Validate JSON input with a schema",
		Long: `Reads JSON input from the file or stdin and validates it. Valid input is
printed as restored records; otherwise the error report is printed and the
command fails.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema(args[0])
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			var opts []serializer.BindOption
			if many {
				opts = append(opts, serializer.Many())
			}

			in, err := s.BindData(input, opts...)
			if err != nil {
				return err
			}

			if report := in.Errors(); !report.IsEmpty() {
				a.dump(cmd, "report", report.Flatten())

				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}

				return errors.Newf("%d validation failure(s)", report.Count())
			}

			if many {
				records, err := in.Objects()
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), records)
			}

			record, err := in.Object()
			if err != nil {
				return err
			}

			a.dump(cmd, "record", record.ToMap())

			return writeJSON(cmd.OutOrStdout(), record)
		},
	}

	cmd.Flags().BoolVar(&many, "many", false, "input is an array of objects")

	return cmd
}
