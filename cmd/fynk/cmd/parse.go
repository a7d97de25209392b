package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fynk-lang/fynk/internal/render"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		format         string
		inequalityOnly bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file",
		Long: `Parses FILE and prints its syntax tree. Use - to read from
standard input.

Formats:
  json  - structural dump, keys in declaration order (default)
  yaml  - the same dump as YAML
  tree  - indented outline

Examples:
  fynk parse main.fy
  fynk parse --format tree main.fy
  fynk parse --inequality-only legacy.fy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}

			sink := render.NewTerminalSink(cmd.ErrOrStderr(), a.styles())
			engine := a.engine(sink, inequalityOnly)

			file, src, err := a.readInput(cmd, engine, args[0])
			if err != nil {
				return err
			}
			sink.AddSource(file, src)

			prog, err := engine.Parse(file, src)
			if err != nil {
				return finish(err)
			}
			return render.WriteProgram(cmd.OutOrStdout(), prog, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", render.FormatJSON, "output format (json, yaml, tree)")
	cmd.Flags().BoolVar(&inequalityOnly, "inequality-only", false, "accept only `expr != expr;` statements")
	return cmd
}
