// Package cli wires the launchdeck commands: the interactive browser at the
// root, plus list, history and config for scripting.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/launchdeck/internal/tui"
	"github.com/jask/launchdeck/internal/version"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the launchdeck command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "launchdeck",
		Short: "Browse SpaceX launches",
		Long: `Browse the SpaceX launch catalog in the terminal.

Run without arguments for the interactive browser. Toggle the upcoming,
past and successful filters with u, p and s; press enter for details.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $LAUNCHDECK_CONFIG or ~/.config/launchdeck/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

func runBrowser(cmd *cobra.Command, opts *RootOptions) error {
	s, err := openSession(opts, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	loc, err := s.cfg.Location()
	if err != nil {
		return WrapExitError(ExitCommandError, "ui.timezone", err)
	}
	st, load := s.liveLoader()

	ctx := cmd.Context()
	app := tui.New(ctx, tui.Options{
		Store:      st,
		Load:       load,
		Location:   loc,
		DateFormat: s.cfg.UI.DateFormat,
		Logger:     s.logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
