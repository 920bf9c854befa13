package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"schema-serializer/serializer"
)

func newDescribeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe [schema...]",
		Short: "Print the fields of schemas",
		Long: `Prints the metadata of the named schemas, or of every schema in the file:
field types, labels, validators and nested schemas.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.schemas()
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = all.Names()
			}

			out := make([]serializer.SchemaMetadata, 0, len(names))

			for _, name := range names {
				s, err := a.lookup(all, name)
				if err != nil {
					return err
				}

				out = append(out, s.Metadata())
			}

			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), out)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)

				if err := enc.Encode(out); err != nil {
					return errors.Wrap(err, "encode output")
				}

				return enc.Close()
			default:
				return errors.Newf("unknown format %q (expected yaml or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format (yaml, json)")

	return cmd
}
