package main

import (
	"github.com/spf13/cobra"
)

func newEncodeCmd(g *globalOptions) *cobra.Command {
	var asHex bool

	cmd := &cobra.Command{
		Use:   "encode [expression]",
		Short: "Parse an expression and write its binary encoding",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := expressionArg(cmd, args)
			if err != nil {
				return err
			}
			node, err := parseExpression(cmd, expr, g.parserOptions())
			if err != nil {
				return err
			}
			outputFormat := "wire"
			if asHex {
				outputFormat = "hex"
			}
			return encodeTree(cmd, node, outputFormat, false)
		},
	}

	cmd.Flags().BoolVar(&asHex, "hex", false, "write a hex dump instead of raw bytes")

	return cmd
}
