package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toybox/internal/chart"
	"toybox/internal/export"
	"toybox/internal/progress"
)

const (
	exportDesc = `Write the bar, line and pie charts as images, plus metadata.json.
`
	exportExample = `  # Export PNGs to ~/.toybox/exports/interactive-dashboard
  toybox export

  # Export SVGs to ./out/q2
  toybox export --format svg --out ./out --name q2
`
)

// ExportArgs holds the flags of the export command.
type ExportArgs struct {
	*RootArgs

	out    *string
	format *string
	name   *string
}

func NewExportArgs(root *RootArgs) *ExportArgs {
	return &ExportArgs{
		RootArgs: root,
		out:      new(string),
		format:   new(string),
		name:     new(string),
	}
}

func (a *ExportArgs) GetOut() string {
	if *a.out != "" {
		return *a.out
	}
	return a.Config().Export.Dir
}

func (a *ExportArgs) GetFormat() string {
	if *a.format != "" {
		return *a.format
	}
	return a.Config().Export.Format
}

func (a *ExportArgs) GetName() string {
	return *a.name
}

// NewExportCmd returns the export command.
func NewExportCmd(root *RootArgs) *cobra.Command {
	args := NewExportArgs(root)

	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export the charts as images",
		Long:         exportDesc,
		Example:      exportExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := chart.ParseFormat(args.GetFormat())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			store, err := export.NewStore(args.GetOut(), args.Logger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			emit := progress.EmitterFunc(func(ev progress.Event) {
				line := fmt.Sprintf("%s %s", statusMark(ev.Status), ev.Message)
				if p := ev.Metadata["path"]; p != "" {
					line += " -> " + p
				}
				fmt.Fprintln(out, line)
			})

			res, err := store.Export(cmd.Context(), args.GetName(), format, emit)
			if err != nil {
				return fmt.Errorf("export charts: %w", err)
			}
			fmt.Fprintf(out, "wrote %d files to %s\n", len(res.Files), res.Dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(args.out, "out", "o", "", "Base directory (default from TOYBOX_EXPORT_DIR or ~/.toybox/exports)")
	cmd.Flags().StringVarP(args.format, "format", "f", "", "Image format: png or svg (default from TOYBOX_EXPORT_FORMAT or png)")
	cmd.Flags().StringVarP(args.name, "name", "n", export.DefaultName, "Export directory name under the base directory")
	must(cmd.MarkFlagDirname("out"))

	return cmd
}

func statusMark(s progress.Status) string {
	switch s {
	case progress.StatusDone:
		return "✓"
	case progress.StatusError:
		return "✗"
	default:
		return "●"
	}
}
