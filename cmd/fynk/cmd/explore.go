package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fynk-lang/fynk/internal/explore"
)

func newExploreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explore [FILE]",
		Short: "Interactive live explorer",
		Long: `Opens a terminal UI with an editor on the left and the tokens
or syntax tree of the buffer on the right, updated as you type.

Keys:
  ctrl+t     switch between tree, tokens and json
  pgup/pgdn  scroll the output pane
  esc        quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Diagnostics are shown inside the UI
			engine := a.engine(nil, false)

			file, src := "<scratch>", ""
			if len(args) == 1 {
				var err error
				if file, src, err = a.readInput(cmd, engine, args[0]); err != nil {
					return err
				}
			}

			model := explore.New(engine, file, src, a.styles())
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
