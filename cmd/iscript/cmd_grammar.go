package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/iscript/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var listProductions bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of interface scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			if listProductions {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(grammar.Productions(g), "\n"))
				return nil
			}
			_, err = cmd.OutOrStdout().Write(grammar.Source)
			return err
		},
	}

	cmd.Flags().BoolVar(&listProductions, "productions", false, "list production names instead of the grammar")

	return cmd
}
