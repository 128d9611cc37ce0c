package cli

import (
	"github.com/spf13/cobra"

	"github.com/gfxprim/automata/internal/app"
)

// NewViewCommand creates the view command.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive viewer (requires the ebiten build tag)",
		Long: `Open a window showing the history, revealed a few rows per tick.

Keys: Up/Down change the first rule, M toggles the meta-rule, R toggles the
reversible update, S seeds randomly, C restores the centered seed, Space
pauses, Q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, rootOpts)
			if err != nil {
				return err
			}
			sim, err := opts.NewSimulator()
			if err != nil {
				return WrapExitError("failed to configure automaton", err)
			}
			if err := app.Run(sim, opts); err != nil {
				return WrapExitError("viewer failed", err)
			}
			return nil
		},
	}
	bindOptions(cmd)
	return cmd
}
