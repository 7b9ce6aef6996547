package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/iscript/grammar"
	"github.com/dhamidi/iscript/script"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		quiet       bool
		withGrammar bool
	)

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate an interface script",
		Long: `Validate an interface script and report the first error.

With --grammar every line is also matched against the EBNF grammar printed by
"iscript grammar".

If no file is provided, reads the script from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text bytes.Buffer
			var copyTo io.Writer
			if withGrammar {
				copyTo = &text
			}

			rec := &script.Recorder{}
			p, err := parseInput(args, cmd.InOrStdin(), rec, copyTo)
			if err == nil && withGrammar {
				err = checkGrammar(inputName(args), text.String())
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%d interfaces, %d signals\n",
					p.Registry().Len(), rec.Count(script.EventSignal))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing when the script is valid")
	cmd.Flags().BoolVar(&withGrammar, "grammar", false, "also match every line against the EBNF grammar")

	return cmd
}

func checkGrammar(source, text string) error {
	g, err := grammar.Load()
	if err != nil {
		return err
	}
	if n := grammar.FirstMismatch(g, text); n > 0 {
		return fmt.Errorf("%s:%d: line does not match the grammar", source, n)
	}
	return nil
}
