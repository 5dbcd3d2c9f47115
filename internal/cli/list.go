package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jask/launchdeck/internal/filter"
	"github.com/jask/launchdeck/internal/launch"
	"github.com/jask/launchdeck/internal/service"
	"github.com/jask/launchdeck/internal/store"
)

// ErrUnavailable is reported when the store ends Failed.
var ErrUnavailable = errors.New("launch data unavailable")

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Upcoming bool
	Past     bool
	Success  bool
	Archive  bool

	// Clock overrides "now" for the filters (for testing).
	Clock func() time.Time
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print launches matching the filters",
		Long: `Load the launch catalog once and print the launches that pass every
enabled filter, in catalog order.

Examples:
  launchdeck list --upcoming
  launchdeck list --past --success
  launchdeck list --archive`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&opts.Upcoming, "upcoming", false, "only launches after now")
	cmd.Flags().BoolVar(&opts.Past, "past", false, "only launches before now")
	cmd.Flags().BoolVar(&opts.Success, "success", false, "only successful launches")
	cmd.Flags().BoolVar(&opts.Archive, "archive", false, "read the newest archived snapshot instead of the API")

	return cmd
}

func runList(ctx context.Context, opts *ListOptions, out, errOut io.Writer) error {
	s, err := openSession(opts.RootOptions, errOut, false)
	if err != nil {
		return err
	}
	defer s.Close()

	loc, err := s.cfg.Location()
	if err != nil {
		return WrapExitError(ExitCommandError, "ui.timezone", err)
	}

	var (
		st   *store.LaunchStore
		load func(context.Context) store.LoadState
	)
	if opts.Archive {
		if err := s.requireArchive(); err != nil {
			return err
		}
		st = store.New(service.SnapshotFetcher{Archive: s.archive}, s.logger)
		load = st.Load
	} else {
		st, load = s.liveLoader()
	}

	if load(ctx) == store.Failed {
		return WrapExitError(ExitFailure, ErrUnavailable.Error(), st.Err())
	}

	engine := filter.NewEngine(st.Records, opts.Clock)
	for name, on := range map[filter.Name]bool{
		filter.Upcoming: opts.Upcoming,
		filter.Past:     opts.Past,
		filter.Success:  opts.Success,
	} {
		if err := engine.SetPredicate(name, on); err != nil {
			return WrapExitError(ExitCommandError, "set filter", err)
		}
	}

	visible := engine.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(out, "No launches found.")
		return nil
	}
	for _, r := range visible {
		printLaunch(out, r, loc, s.cfg.UI.DateFormat)
	}
	return nil
}

func printLaunch(w io.Writer, r launch.Record, loc *time.Location, format string) {
	date := r.LaunchDate
	if loc != nil {
		date = date.In(loc)
	}
	var outcome string
	switch r.Outcome() {
	case launch.OutcomeSuccess:
		outcome = color.GreenString("success")
	case launch.OutcomeFailure:
		outcome = color.RedString("failure")
	default:
		outcome = color.YellowString("unknown")
	}
	fmt.Fprintf(w, "%s  %s  %s  %s\n",
		color.New(color.Faint).Sprintf("#%-4d", r.FlightNumber),
		color.New(color.Bold).Sprintf("%-28s", r.MissionName),
		color.CyanString(date.Format(format)),
		outcome)
}
