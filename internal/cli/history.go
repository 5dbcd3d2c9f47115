package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jask/launchdeck/internal/database/repository"
	"github.com/jask/launchdeck/internal/service"
)

// HistoryOptions holds flags for the history commands.
type HistoryOptions struct {
	*RootOptions
	Limit int
	Keep  int
}

// NewHistoryCommand creates the history command and its prune subcommand.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded fetch runs",
		Long: `List the fetch runs kept in the archive, newest first. Each row shows
when the catalog was loaded, how it ended and how many launches came back.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts.RootOptions, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireArchive(); err != nil {
				return err
			}
			runs, err := s.archive.History(cmd.Context(), opts.Limit)
			if err != nil {
				return WrapExitError(ExitCommandError, "read history", err)
			}
			displayHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "number of runs to show (0 for all)")

	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the newest fetch runs",
		Long: `Delete old fetch runs and their snapshots, keeping the newest --keep runs.

Examples:
  launchdeck history prune
  launchdeck history prune --keep 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts.RootOptions, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireArchive(); err != nil {
				return err
			}
			m := &service.MaintenanceService{DB: s.db}
			n, err := m.PruneHistory(cmd.Context(), opts.Keep)
			if err != nil {
				return WrapExitError(ExitCommandError, "prune history", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d fetch run(s), kept the newest %d.\n", n, opts.Keep)
			return nil
		},
	}
	prune.Flags().IntVar(&opts.Keep, "keep", 10, "number of runs to keep")
	cmd.AddCommand(prune)

	return cmd
}

func displayHistory(w io.Writer, runs []repository.FetchRun) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No fetch runs recorded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tSTATE\tLAUNCHES\tDURATION\tDETAIL")
	for _, r := range runs {
		state := color.GreenString(r.State)
		if r.State != "ready" {
			state = color.RedString(r.State)
		}
		detail := ""
		if r.Error != nil {
			detail = *r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			r.StartedAt.Local().Format(time.DateTime),
			state,
			r.RecordCount,
			r.Duration().Round(time.Millisecond),
			detail)
	}
	_ = tw.Flush()
}
