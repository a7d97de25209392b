package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fynk-lang/fynk/foundation/utils/filex"
	"github.com/fynk-lang/fynk/internal/render"
	"github.com/fynk-lang/fynk/internal/watch"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Report syntax errors in one or more files",
		Long: `Parses every PATH and prints its diagnostics. Directories are
searched for *.fy and *.fynk files. Exits non-zero when any file fails.
With --watch, changed files are checked again until interrupted.

Examples:
  fynk check src/
  fynk check --quiet main.fy
  fynk check --watch src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := a.styles()
			sink := render.NewTerminalSink(cmd.ErrOrStderr(), styles)
			engine := a.engine(nil, false)
			out := cmd.OutOrStdout()

			paths, err := expandPaths(args)
			if err != nil {
				return err
			}

			// checkFile reports whether path parsed cleanly
			checkFile := func(path string) bool {
				file, src, err := a.readInput(cmd, engine, path)
				if err != nil {
					printError(cmd.ErrOrStderr(), err)
					return false
				}
				sink.AddSource(file, src)

				result, err := engine.Check(file, src)
				if err != nil {
					printError(cmd.ErrOrStderr(), err)
					return false
				}
				if !result.OK() {
					for _, d := range result.Diagnostics {
						sink.Report(d)
					}
					return false
				}
				if !quiet {
					fmt.Fprintf(out, "%s %s (%d statements)\n",
						styles.Success.Render("ok"), file, len(result.Program.Body))
				}
				return true
			}

			failed := 0
			for _, path := range paths {
				if !checkFile(path) {
					failed++
				}
			}

			if watchMode {
				w, err := watch.New(args, watch.Config{Patterns: sourcePatterns}, func(path string) {
					checkFile(path)
				}, a.logger)
				if err != nil {
					return err
				}

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				fmt.Fprintf(out, "Watching %d paths for changes\n", len(args))
				return w.Run(ctx)
			}

			if failed > 0 {
				if !quiet {
					fmt.Fprintf(out, "%d of %d files failed\n", failed, len(paths))
				}
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print diagnostics only")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "check changed files again until interrupted")
	return cmd
}

// sourcePatterns select the files checked inside a directory
var sourcePatterns = []string{"*.fy", "*.fynk"}

func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !filex.IsDir(arg) {
			paths = append(paths, arg)
			continue
		}
		files, err := filex.FindFiles(arg, sourcePatterns...)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}
