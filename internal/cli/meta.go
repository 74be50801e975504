package cli

import (
	"github.com/spf13/cobra"

	"toybox/internal/dashboard"
	"toybox/internal/export"
	"toybox/internal/jsonutil"
)

// NewMetaCmd returns the meta command. With --from it prints the record
// stored with an earlier export instead of the built-in one.
func NewMetaCmd(root *RootArgs) *cobra.Command {
	from := new(string)

	cmd := &cobra.Command{
		Use:          "meta",
		Short:        "Print the dashboard metadata as JSON",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta := dashboard.Info()
			if *from != "" {
				store, err := export.NewStore(root.Config().Export.Dir, root.Logger())
				if err != nil {
					return err
				}
				meta, err = store.LoadMetadata(*from)
				if err != nil {
					return err
				}
			}
			return jsonutil.WriteIndented(cmd.OutOrStdout(), meta)
		},
	}

	cmd.Flags().StringVar(from, "from", "", "Read metadata.json from this export name")

	return cmd
}
