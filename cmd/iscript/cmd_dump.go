package main

import (
	"fmt"

	"github.com/dhamidi/iscript/format"
	"github.com/dhamidi/iscript/script"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the declarations and signals of an interface script",
		Long: `Print the declarations and signals of an interface script in order.

If no file is provided, reads the script from stdin. Nothing is printed
when the script is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.New(dumpFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			rec := &script.Recorder{}
			if _, err := parseInput(args, cmd.InOrStdin(), rec, nil); err != nil {
				return fmt.Errorf("parse script: %w", err)
			}

			if err := enc.Encode(rec.Events); err != nil {
				return fmt.Errorf("encode %s: %w", dumpFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (line, json, yaml, toml)")

	return cmd
}
