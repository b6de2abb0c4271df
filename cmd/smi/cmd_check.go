package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/smiles/lsp"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse every line of a file and report failures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			w := cmd.OutOrStdout()
			ws := lsp.New(path, g.parserOptions()...)

			if !watch {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				doc := ws.UpdateFile(path, content)
				fmt.Fprint(w, lsp.Report(doc))
				if n := len(doc.Errors()); n > 0 {
					return fmt.Errorf("%s: %d of %d lines failed to parse", path, n, len(doc.Lines))
				}
				return nil
			}

			ws.OnUpdate(func(doc *lsp.Document) {
				fmt.Fprintf(w, "%s: %d lines (%d reparsed), %d failed\n", doc.Path, len(doc.Lines), doc.Parsed, len(doc.Errors()))
				fmt.Fprint(w, lsp.Report(doc))
			})
			watcher := lsp.NewFileWatcher(ws)
			watcher.SetInterval(interval)
			watcher.Start()
			defer watcher.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check the file whenever it changes")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval for --watch")

	return cmd
}
