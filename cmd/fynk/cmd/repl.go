package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/fynk-lang/fynk/internal/render"
	"github.com/fynk-lang/fynk/internal/repl"
)

const historyFile = ".fynk_history"

func newReplCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse statements line by line",
		Long: `Reads statements at a prompt and prints their syntax tree.
Unfinished statements continue on the next line.

Commands:
  :format json|yaml|tree|tokens
  :help
  :quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := a.engine(nil, false)

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			if home, err := os.UserHomeDir(); err == nil {
				histPath := filepath.Join(home, historyFile)
				if f, err := os.Open(histPath); err == nil {
					ln.ReadHistory(f)
					f.Close()
				}
				defer func() {
					if f, err := os.Create(histPath); err == nil {
						ln.WriteHistory(f)
						f.Close()
					}
				}()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fynk %s repl, :help for commands\n", Version)
			r := repl.New(engine, cmd.OutOrStdout(), cmd.ErrOrStderr(), repl.Config{
				Format: format,
				Styles: a.styles(),
			})
			return r.Run(ln)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", render.FormatTree, "output format (json, yaml, tree, tokens)")
	return cmd
}
