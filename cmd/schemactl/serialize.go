package main

import (
	"github.com/spf13/cobra"

	"schema-serializer/serializer"
)

func newSerializeCmd(a *app) *cobra.Command {
	var many bool

	cmd := &cobra.Command{
		Use:   "serialize SCHEMA [input.json]",
		Short: "Serialize a JSON object with a schema",
		Long: `Reads a JSON object (or an array with --many) from the file or stdin and
prints the schema's output form of it.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema(args[0])
			if err != nil {
				return err
			}

			obj, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			var opts []serializer.BindOption
			if many {
				opts = append(opts, serializer.Many())
			}

			in, err := s.Bind(obj, opts...)
			if err != nil {
				return err
			}

			data, err := in.Data()
			if err != nil {
				return err
			}

			a.dump(cmd, "data", data)

			return writeJSON(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().BoolVar(&many, "many", false, "input is an array of objects")

	return cmd
}
