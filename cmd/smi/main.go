package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/smiles/smiles/parser"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

type globalOptions struct {
	maxDepth  int
	maxLength int
	verbose   int
	logFile   string
}

func (g *globalOptions) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithMaxDepth(g.maxDepth),
		parser.WithMaxLength(g.maxLength),
	}
}

func (g *globalOptions) configureLogging() {
	var path *string
	if g.logFile != "" {
		path = &g.logFile
	}
	commonlog.Configure(g.verbose, path)
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "smi",
		Short:         "Parse and encode SMILES expressions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.configureLogging()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&g.maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum branch nesting (0 disables the limit)")
	flags.IntVar(&g.maxLength, "max-length", parser.DefaultMaxLength, "maximum expression length in bytes (0 disables the limit)")
	flags.CountVarP(&g.verbose, "verbose", "v", "increase log verbosity")
	flags.StringVar(&g.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newEncodeCmd(g))
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newCallCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(g))

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
