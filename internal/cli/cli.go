// Package cli wires configuration, logging and the application actions into
// the generate-gitignore root command.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/kristiankunc/generate-gitignore/internal/app"
	"github.com/kristiankunc/generate-gitignore/internal/config"
	"github.com/kristiankunc/generate-gitignore/internal/logging"
	"github.com/kristiankunc/generate-gitignore/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitConfig  = 2
	ExitAborted = 130
)

// stdinIsTerminal decides whether running without an action starts the
// interactive search.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewCommand builds the root command for args, taking flag defaults from
// environ.
func NewCommand(args, environ []string) *cobra.Command {
	if args == nil {
		args = []string{}
	}
	flags := config.NewFlags(environ)
	cmd := &cobra.Command{
		Use:   "generate-gitignore",
		Short: "Generate .gitignore files from a catalog of templates",
		Long: `Generate .gitignore files from a catalog of templates.

Without an action flag the interactive search starts when stdin is a
terminal. Type to filter, use the arrow keys to move, Enter to select and
Ctrl+C to exit.`,
		Example: `  generate-gitignore --list
  generate-gitignore --search pyth
  generate-gitignore --use python --force
  generate-gitignore -i`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", config.ErrInvalid, args[0])
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.Config(args)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	cmd.Flags().AddFlagSet(flags.Set())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	})
	cmd.SetArgs(args)
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)

	a, err := app.New(cfg.App, app.WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	action := cfg.Action
	switch {
	case action.List:
		err = a.List(ctx, action.Long)
	case action.Search != "":
		err = a.Search(ctx, action.Search)
	case action.Use != "":
		err = a.Use(ctx, action.Use)
	case action.Interactive || stdinIsTerminal():
		err = a.Interactive(ctx)
	default:
		return cmd.Help()
	}
	if err != nil && !errors.Is(err, app.ErrAborted) {
		events.App.Error(err)
	}
	return err
}

// ExitCode maps an error returned by the root command to a process status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, app.ErrAborted):
		return ExitAborted
	case errors.Is(err, config.ErrInvalid):
		return ExitConfig
	default:
		return ExitError
	}
}
