//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"github.com/gfxprim/automata/internal/config"
	"github.com/gfxprim/automata/internal/core"
	"github.com/gfxprim/automata/internal/render"
	"github.com/gfxprim/automata/internal/sims/elementary"
	"github.com/gfxprim/automata/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts the simulator to the ebiten.Game interface.
type Game struct {
	sim     *elementary.Simulator
	sampler *render.Sampler
	painter *render.GridPainter
	hud     *ui.HUD
	reveal  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale  int
	shown  int
	paused bool
	dirty  bool
	seed   int64
}

// New constructs a Game for the provided simulator.
func New(sim *elementary.Simulator, opts config.Options) (*Game, error) {
	w, h := opts.OutputSize(sim.Size())
	sampler, err := render.NewSampler(sim.Matrix(), w, h)
	if err != nil {
		return nil, err
	}
	scale := max(1, opts.Scale)
	return &Game{
		sim:      sim,
		sampler:  sampler,
		painter:  render.NewGridPainter(w*scale, h*scale),
		hud:      ui.NewHUD(sim, hudWidth),
		reveal:   core.NewFixedStep(opts.TPS),
		onColor:  render.Foreground,
		offColor: render.Background,
		scale:    scale,
		dirty:    true,
		seed:     opts.Seed,
	}, nil
}

// Run opens the viewer window and blocks until it is closed.
func Run(sim *elementary.Simulator, opts config.Options) error {
	game, err := New(sim, opts)
	if err != nil {
		return err
	}
	w, h := game.painter.Size()
	ebiten.SetWindowTitle("automata - " + sim.Name() + " " + sim.Rules().String())
	ebiten.SetWindowSize(w+game.hud.Width(), h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// rerun recomputes the history and restarts the reveal.
func (g *Game) rerun() {
	start := time.Now()
	g.sim.Run()
	g.painter.Upload(render.Rasterize(g.sampler, g.onColor, g.offColor, g.scale))
	slog.Debug("history redrawn", "rules", g.sim.Rules().String(), "elapsed", time.Since(start))
	g.shown = 0
	g.reveal.Reset()
	g.dirty = false
}

// Update handles per-frame logic and advances the reveal.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.dirty = g.hud.Adjust("rule", 1) || g.dirty
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.dirty = g.hud.Adjust("rule", -1) || g.dirty
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.dirty = g.hud.Toggle("meta") || g.dirty
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dirty = g.hud.Toggle("reversible") || g.dirty
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.sim.SeedRandom(g.seed)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.SetInitialCondition(nil)
		g.dirty = true
	}

	w, _ := g.painter.Size()
	if g.hud.Update(w) {
		g.dirty = true
	}
	if g.dirty {
		g.rerun()
	}

	ticks := g.reveal.Ticks()
	if !g.paused {
		g.shown += ticks * g.scale
	}
	return nil
}

// Draw renders the revealed part of the history and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	g.painter.Blit(screen, g.shown)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
