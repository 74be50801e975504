package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"toybox/internal/chart"
	"toybox/internal/export"
	"toybox/internal/progress"
	"toybox/internal/telemetry"
	"toybox/internal/ui"
	"toybox/internal/viewstate"
)

const runDesc = `Open the interactive dashboard.

tab and shift+tab move between the metric cards, the counter and the charts.
Press SPC for commands (i about, e export charts, c r reset counter, q quit).
`

// RunArgs holds the flags of the run command.
type RunArgs struct {
	*RootArgs

	tick        *time.Duration
	noAltScreen *bool
}

func NewRunArgs(root *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs:    root,
		tick:        new(time.Duration),
		noAltScreen: new(bool),
	}
}

func (a *RunArgs) GetTick() time.Duration {
	if *a.tick > 0 {
		return *a.tick
	}
	return a.Config().TickInterval
}

func (a *RunArgs) GetNoAltScreen() bool {
	return *a.noAltScreen
}

// NewRunCmd returns the run command.
func NewRunCmd(root *RootArgs) *cobra.Command {
	args := NewRunArgs(root)

	cmd := &cobra.Command{
		Use:          "run",
		Short:        "Open the interactive dashboard",
		Long:         runDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Annotations:  map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := args.Logger()
			ctrl := viewstate.New(
				viewstate.WithInterval(args.GetTick()),
				viewstate.WithLogger(logger),
				viewstate.WithTracer(telemetry.Tracer("toybox/viewstate")),
			)
			exp, err := newDashboardExporter(args.RootArgs)
			if err != nil {
				// Export is optional in the dashboard.
				logger.Warn("export disabled", slog.Any("error", err))
			}

			opts := []tea.ProgramOption{
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if !args.GetNoAltScreen() {
				opts = append(opts, tea.WithAltScreen())
			}

			model := ui.NewAppModel(ctrl, exp, logger).AsTeaModel()
			if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
				return fmt.Errorf("run dashboard: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(args.tick, "tick", 0, "Progress tick interval (default from TOYBOX_TICK_INTERVAL or 100ms)")
	cmd.Flags().BoolVar(args.noAltScreen, "no_alt_screen", false, "Render inline instead of in the alternate screen")

	return cmd
}

// newDashboardExporter exports into the configured directory under the
// default name, in the configured format. Returns a nil ui.Exporter on error.
func newDashboardExporter(args *RootArgs) (ui.Exporter, error) {
	cfg := args.Config()
	format, err := chart.ParseFormat(cfg.Export.Format)
	if err != nil {
		return nil, err
	}
	store, err := export.NewStore(cfg.Export.Dir, args.Logger())
	if err != nil {
		return nil, err
	}
	return ui.ExporterFunc(func(ctx context.Context, emit progress.Emitter) error {
		_, err := store.Export(ctx, export.DefaultName, format, emit)
		return err
	}), nil
}
