package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/smiles/smiles/wire"
)

func newDecodeCmd() *cobra.Command {
	var outputFormat string
	var fromHex bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a binary tree and print it",
		Long:  "Decode a binary tree produced by encode or call and print it. Without a file the payload is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}

			if fromHex {
				data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
				if err != nil {
					return fmt.Errorf("decode hex: %w", err)
				}
			}

			node, err := wire.Decode(data)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			return encodeTree(cmd, node, outputFormat, false)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, line, tree)")
	cmd.Flags().BoolVar(&fromHex, "hex", false, "payload is plain hex digits")

	return cmd
}
