package cli

import (
	"bufio"
	"io"

	"github.com/spf13/cobra"

	"github.com/gfxprim/automata/internal/core"
)

// Glyphs used by the print command.
const (
	GlyphSet   = '#'
	GlyphClear = '.'
)

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Run the automaton and print its history as text",
		Long: `Run the automaton and print one line per generation, '#' for set
cells and '.' for clear ones.

Example:
  ca print -H 32 -r 90`,
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
			if err := WriteText(cmd.OutOrStdout(), sim.Run()); err != nil {
				return WrapExitError("failed to write history", err)
			}
			return nil
		},
	}
	bindOptions(cmd)
	return cmd
}

// WriteText writes m one row per line.
func WriteText(w io.Writer, m *core.Matrix) error {
	bw := bufio.NewWriter(w)
	cells := m.Size().Cells()
	for y := 0; y < m.H; y++ {
		row := m.Row(y)
		for col := 0; col < cells; col++ {
			c := byte(GlyphClear)
			if row.Bit(col) {
				c = GlyphSet
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
