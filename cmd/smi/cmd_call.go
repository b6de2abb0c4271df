package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/smiles/smiles/host"
)

func newCallCmd(g *globalOptions) *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "call [expression]",
		Short: "Run an expression through the host boundary and print the payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := expressionArg(cmd, args)
			if err != nil {
				return err
			}

			status, payload := host.Call(expr, capacity, g.parserOptions()...)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "status %d, %d bytes\n", status, len(payload))
			if status != host.StatusOK {
				fmt.Fprintln(w, string(payload))
				return fmt.Errorf("call returned status %d", status)
			}
			fmt.Fprint(w, hex.Dump(payload))
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "result buffer capacity in bytes (0 for unlimited)")

	return cmd
}
