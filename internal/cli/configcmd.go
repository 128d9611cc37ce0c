package cli

import (
	"github.com/spf13/cobra"

	"github.com/gfxprim/automata/internal/config"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective options as YAML",
		Long: `Print the options after merging defaults, the --config file and flags.
The output can be saved and passed back with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, rootOpts)
			if err != nil {
				return err
			}
			return config.Dump(cmd.OutOrStdout(), opts)
		},
	}
	bindOptions(cmd)
	return cmd
}
