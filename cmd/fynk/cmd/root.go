package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fynk-lang/fynk/foundation/core/config"
	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
	"github.com/fynk-lang/fynk/foundation/fynk"
	"github.com/fynk-lang/fynk/foundation/fynk/diag"
	"github.com/fynk-lang/fynk/internal/render"
)

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("diagnostics reported")

// app holds the state shared by all subcommands of one invocation
type app struct {
	configPath string
	verbose    bool
	logFormat  string
	noColor    bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

// Execute runs the fynk command line
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fynk",
		Short: "Fynk language front end",
		Long: `fynk tokenizes and parses Fynk source files.

Commands:
  tokens   - print the token stream of a file
  parse    - print the syntax tree of a file
  check    - report syntax errors in one or more files
  explore  - interactive live explorer
  repl     - parse statements at a prompt
  serve    - websocket live-parse playground

Configuration is read from --config, $FYNK_CONFIG, ./fynk.toml,
./fynk.yaml or ~/.config/fynk/config.toml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default: ./fynk.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (json, text, console, logfmt)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newExploreCmd(a),
		newReplCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	opts := config.DefaultDiscoveryOptions()
	opts.Explicit = a.configPath

	cfg, err := config.Discover(opts)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		cfg.General.LogFormat = a.logFormat
	}
	if a.verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validate has already checked both values
	level, _ := mdwlog.ParseLevel(cfg.General.LogLevel)
	format, _ := mdwlog.ParseFormat(cfg.General.LogFormat)

	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "fynk",
	})
	mdwlog.SetDefault(a.logger)
	a.cfg = cfg

	a.logger.Debug("Configuration loaded", mdwlog.Fields{
		"source":  cfg.Source,
		"command": cmd.Name(),
	})
	return nil
}

func (a *app) styles() render.Styles {
	return render.StylesFor(a.cfg.Output.ColorEnabled() && !a.noColor)
}

func (a *app) engine(sink diag.Sink, inequalityOnly bool) *fynk.Engine {
	opts := fynk.OptionsFromConfig(a.cfg, a.logger)
	opts.Sink = sink
	opts.InequalityOnly = opts.InequalityOnly || inequalityOnly
	return fynk.New(opts)
}

// readInput reads path, or standard input when path is "-"
func (a *app) readInput(cmd *cobra.Command, engine *fynk.Engine, path string) (string, string, error) {
	if path != "-" {
		src, err := engine.ReadSource(path)
		return path, src, err
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", mdwerror.Wrap(err, "failed to read standard input").
			WithCode(mdwerror.CodeSourceRead)
	}
	return "<stdin>", string(data), nil
}

// finish maps a front end error to the command result. Diagnostics have
// already been printed by the terminal sink.
func finish(err error) error {
	if err == nil {
		return nil
	}
	if mdwerror.GetCode(err).IsDiagnostic() {
		return errReported
	}
	return err
}

func printError(w io.Writer, err error) {
	styles := render.StylesFor(os.Getenv("NO_COLOR") == "")
	fmt.Fprintln(w, styles.Error.Render("error: ")+err.Error())
}
