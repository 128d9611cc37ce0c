package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gfxprim/automata/internal/config"
	"github.com/gfxprim/automata/internal/render"
)

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run the automaton and export its history as an image",
		Long: `Run the automaton and write its history to an image file.

The format follows the extension of --output: png, jpg/jpeg, gif, bmp or
tif/tiff. Set cells are black on white.

Example:
  ca render -W 16 -H 512 -r 30 -o rule30.png
  ca render -W 4 -H 256 -r 110,30 --meta --meta-rule 150 --scale 2 -o meta.bmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, rootOpts)
			if err != nil {
				return err
			}
			return runRender(opts)
		},
	}
	bindOptions(cmd)
	return cmd
}

func runRender(opts config.Options) error {
	if _, err := render.FormatFromPath(opts.Output); err != nil {
		return WrapExitError("invalid output path", err)
	}
	sim, err := opts.NewSimulator()
	if err != nil {
		return WrapExitError("failed to configure automaton", err)
	}

	start := time.Now()
	m := sim.Run()
	slog.Debug("automaton run", "words", m.W, "rows", m.H, "elapsed", time.Since(start))

	w, h := opts.OutputSize(m.Size())
	sampler, err := render.NewSampler(m, w, h)
	if err != nil {
		return WrapExitError("failed to sample history", err)
	}

	start = time.Now()
	img := render.Rasterize(sampler, render.Foreground, render.Background, opts.Scale)
	slog.Debug("history rasterized", "width", img.Rect.Dx(), "height", img.Rect.Dy(), "elapsed", time.Since(start))

	start = time.Now()
	if err := render.Save(opts.Output, img); err != nil {
		return WrapExitError("failed to export image", err)
	}
	slog.Debug("image encoded", "elapsed", time.Since(start))
	slog.Info("wrote image", "path", opts.Output, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	return nil
}
