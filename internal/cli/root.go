package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gfxprim/automata/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Config  string
}

// NewRootCommand creates the root command of the ca tool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ca",
		Short: "One-dimensional binary cellular automata",
		Long: `Simulate one-dimensional binary cellular automata on a circular row of
64-cell words and render the history of every generation as a bitmap.

Rules use Wolfram numbering. Several rules may be listed; word i of each row
uses rule i mod n, or the rule picked by the meta-rule when --meta is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML config file; flags override its values")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewPrintCommand(opts))
	cmd.AddCommand(NewViewCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		slog.Error("ca failed", "err", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// loadOptions resolves the options of cmd from its flags and the config
// file named on the root command.
func loadOptions(cmd *cobra.Command, root *RootOptions) (config.Options, error) {
	opts, err := config.Load(cmd.Flags(), root.Config)
	if err != nil {
		return config.Options{}, &ExitError{Code: ExitCommandError, Message: "failed to load options", Err: err}
	}
	if err := opts.Validate(); err != nil {
		return config.Options{}, WrapExitError("invalid options", err)
	}
	return opts, nil
}

// bindOptions registers the run options as flags of cmd. Values are read
// back through loadOptions.
func bindOptions(cmd *cobra.Command) {
	defaults := config.Defaults()
	defaults.Bind(cmd.Flags())
}
