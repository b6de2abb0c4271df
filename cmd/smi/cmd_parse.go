package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/smiles/format"
	"github.com/dhamidi/smiles/smiles/parser"
)

func newParseCmd(g *globalOptions) *cobra.Command {
	var outputFormat string
	var includePositions bool
	var jsonErrors bool

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and dump the tree",
		Long:  "Parse an expression and dump the tree. Without an argument the first line of stdin is parsed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := expressionArg(cmd, args)
			if err != nil {
				return err
			}

			if !jsonErrors {
				node, err := parseExpression(cmd, expr, g.parserOptions())
				if err != nil {
					return err
				}
				return encodeTree(cmd, node, outputFormat, includePositions)
			}

			node, err := parser.Parse(expr, g.parserOptions()...)
			var perr *parser.Error
			if errors.As(err, &perr) {
				text, jerr := format.ErrorJSON(perr)
				if jerr != nil {
					return fmt.Errorf("encode json: %w", jerr)
				}
				cmd.OutOrStdout().Write(text)
			}
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			return encodeTree(cmd, node, outputFormat, includePositions)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (hex, json, line, tree, wire)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include source spans in tree and json output")
	cmd.Flags().BoolVar(&jsonErrors, "json-errors", false, "report parse failures as json on stdout")

	return cmd
}

func encodeTree(cmd *cobra.Command, node *parser.Node, outputFormat string, positions bool) error {
	w := cmd.OutOrStdout()
	var enc format.Encoder
	switch outputFormat {
	case "tree":
		t := format.NewTreeEncoder(w)
		if positions {
			t.WithPositions()
		}
		enc = t
	case "json":
		j := format.NewJSONEncoder(w)
		if !positions {
			j.WithoutPositions()
		}
		enc = j
	default:
		var err error
		enc, err = format.New(outputFormat, w)
		if err != nil {
			return err
		}
	}
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encode %s: %w", outputFormat, err)
	}
	return nil
}
