package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fynk-lang/fynk/internal/render"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long: `Tokenizes FILE and prints one token per line with its position.
Use - to read from standard input.

Examples:
  fynk tokens main.fy
  echo 'x = 1;' | fynk tokens -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := a.styles()
			sink := render.NewTerminalSink(cmd.ErrOrStderr(), styles)
			engine := a.engine(sink, false)

			file, src, err := a.readInput(cmd, engine, args[0])
			if err != nil {
				return err
			}
			sink.AddSource(file, src)

			tokens, err := engine.Tokenize(file, src)
			if err != nil {
				return finish(err)
			}

			fmt.Fprint(cmd.OutOrStdout(), render.TokenTable(tokens.Tokens(), styles))
			return nil
		},
	}
}
