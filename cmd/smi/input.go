package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/smiles/smiles/parser"
)

// expressionArg returns the expression given on the command line, or the
// first line of standard input when there is none.
func expressionArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// parseExpression parses expr and writes the caret diagnostic to stderr on
// failure.
func parseExpression(cmd *cobra.Command, expr string, opts []parser.Option) (*parser.Node, error) {
	node, err := parser.Parse(expr, opts...)
	if err == nil {
		return node, nil
	}
	var perr *parser.Error
	if errors.As(err, &perr) {
		fmt.Fprintln(cmd.ErrOrStderr(), perr.Render(expr))
	}
	return nil, fmt.Errorf("parse: %w", err)
}
