package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
	"github.com/tliron/commonlog/zerolog"
)

const version = "0.1.0"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string
	var logBackend string

	rootCmd := &cobra.Command{
		Use:     "iscript",
		Short:   "Tools for interface scripts",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(logBackend, verbose, logFile)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&logBackend, "log-backend", "simple", "logging backend (simple, zerolog)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func configureLogging(logBackend string, verbose int, logFile string) error {
	switch logBackend {
	case "simple":
		commonlog.SetBackend(simple.NewBackend())
	case "zerolog":
		commonlog.SetBackend(zerolog.NewBackend())
	default:
		return fmt.Errorf("unknown log backend: %s (expected simple or zerolog)", logBackend)
	}

	var path *string
	if logFile != "" {
		path = &logFile
	}
	commonlog.Configure(verbose, path)
	return nil
}
