// Package cli implements the noteiser command-line interface. Execute is the
// only place that maps errors to exit codes; every command below it returns
// errors instead of exiting.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noteiser/internal/apperr"
	"github.com/mesh-intelligence/noteiser/internal/config"
	"github.com/mesh-intelligence/noteiser/internal/confirm"
	"github.com/mesh-intelligence/noteiser/internal/notify"
	"github.com/mesh-intelligence/noteiser/internal/paths"
	"github.com/mesh-intelligence/noteiser/internal/shell"
	"github.com/mesh-intelligence/noteiser/internal/workspace"
)

// Exit codes. exitDeclined is kept apart from exitError so scripts can tell
// a refusal from a failure.
const (
	exitSuccess  = 0
	exitError    = 1
	exitDeclined = 2
)

// annotationLenientConfig marks commands that must keep working when the
// config file is unreadable or malformed, so the user can repair it.
const annotationLenientConfig = "noteiser/lenient-config"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	editor   string
	jsonMode bool
	verbose  bool
}

// app is the state of one invocation: flags, the home directory and the
// config loaded once before any subcommand runs.
type app struct {
	flags  rootFlags
	home   string
	cfg    *config.Config
	runner shell.Runner
}

// Option configures the root command.
type Option func(*app)

// WithRunner replaces the process runner used for editors and scaffolding.
func WithRunner(r shell.Runner) Option {
	return func(a *app) {
		a.runner = r
	}
}

// NewRootCmd creates the top-level "noteiser" command with global flags
// and all subcommands registered.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{runner: shell.NewExec()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "noteiser",
		Short: "Open, create and manage projects and notes in your editor",
		Long: `noteiser is a launcher for your editor. It resolves short names of
projects, notes and LaTeX documents to paths under the directories set in
~/.config/noteiser/config.toml and opens them.`,
		Version: Version,
		// Execute prints errors; cobra should not.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.flags.editor, "editor", "e", "", "editor to use (overrides config and $EDITOR)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "print debug logs to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newOpenCmd())
	root.AddCommand(a.newConfigCmd())
	root.AddCommand(a.newKindCmd(workspace.Project, "Rust project functions"))
	root.AddCommand(a.newKindCmd(workspace.Note, "Note taking functions"))
	root.AddCommand(a.newKindCmd(workspace.Latex, "LaTeX document functions"))
	root.AddCommand(a.newScratchCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return execute(NewRootCmd())
}

func execute(root *cobra.Command) int {
	return exitCode(root.ErrOrStderr(), root.Execute())
}

// exitCode reports err to the user and picks the exit code for it.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, apperr.ErrDeclined) {
		notify.Warningf(w, "Operation cancelled")
		return exitDeclined
	}
	notify.Errorf(w, "%s", err)
	return exitError
}

// setup configures logging, resolves $HOME and loads the config once for
// the whole invocation.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configureLogging(cmd.ErrOrStderr(), a.flags.verbose)

	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}

	home, err := paths.Home()
	if err != nil {
		return err
	}
	a.home = home

	cfg, err := config.Load(home)
	switch {
	case err == nil:
		a.cfg = cfg
	case errors.Is(err, config.ErrNotFound):
		logrus.WithField("path", paths.ConfigFile(home)).Debug("no config file; continuing without one")
	case cmd.Annotations[annotationLenientConfig] != "":
		logrus.WithError(err).Warn("ignoring broken config file")
	default:
		return err
	}
	return nil
}

// configureLogging points logrus at w. Diagnostics stay quiet unless
// --verbose is given.
func configureLogging(w io.Writer, verbose bool) {
	if w == nil {
		w = os.Stderr
	}
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.WarnLevel)
}

// service builds the workspace service for cmd, wiring the confirmation
// gate to the command's own streams.
func (a *app) service(cmd *cobra.Command) *workspace.Service {
	return &workspace.Service{
		Config:         a.cfg,
		Home:           a.home,
		EditorOverride: a.flags.editor,
		Runner:         a.runner,
		Gate:           confirm.Gate{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
		Out:            cmd.OutOrStdout(),
	}
}
