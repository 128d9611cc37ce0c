package elementary

import (
	"github.com/gfxprim/automata/internal/core"
	"github.com/gfxprim/automata/internal/render"
)

// Config holds parameters for the elementary cellular automaton. Width is
// measured in 64-cell words.
type Config struct {
	Width      int
	Height     int
	Rules      Table
	Meta       MetaRule
	Reversible bool
	Workers    int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 1, Height: 64, Rules: Table{110}}
}

// Simulator runs a one-dimensional binary automaton and keeps every
// generation of the run in a packed history matrix.
type Simulator struct {
	w, h    int
	stepper Stepper

	init     core.Row
	initText []byte
	random   bool
	seed     int64
	zero     core.Row
	steps    *core.Matrix
}

// New creates a simulator for cfg with the centered single-cell seed.
func New(cfg Config) (*Simulator, error) {
	s := &Simulator{steps: &core.Matrix{}}
	rules := cfg.Rules
	if rules == nil {
		rules = DefaultConfig().Rules
	}
	if err := s.SetRules(rules); err != nil {
		return nil, err
	}
	if err := s.Configure(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	s.stepper.Meta = cfg.Meta
	s.stepper.Reversible = cfg.Reversible
	s.stepper.Workers = cfg.Workers
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return "elementary" }

// Size returns the history dimensions.
func (s *Simulator) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Configure reallocates the history for width words by height rows and
// rebuilds the initial condition from the last supplied bytes. On failure
// the previous history stays valid.
func (s *Simulator) Configure(width, height int) error {
	if s.w > 0 && width == s.w && height == s.h {
		return nil
	}
	if width < 1 {
		return core.ConfigError("configure", "width must be at least 1 word, got %d", width)
	}
	if err := s.steps.Resize(width, height); err != nil {
		return err
	}
	s.w, s.h = width, height
	s.init = core.NewRow(width)
	s.zero = core.NewRow(width)
	s.loadInit()
	return nil
}

// SetRules replaces the rule table.
func (s *Simulator) SetRules(codes []uint8) error {
	t, err := NewTable(codes...)
	if err != nil {
		return err
	}
	s.stepper.Rules = t
	return nil
}

// Rules returns the active rule table.
func (s *Simulator) Rules() Table { return s.stepper.Rules }

// SetMetaRule sets the meta-rule code.
func (s *Simulator) SetMetaRule(code uint8) { s.stepper.Meta.Code = code }

// SetMetaRuleEnabled switches meta-rule selection on or off.
func (s *Simulator) SetMetaRuleEnabled(on bool) { s.stepper.Meta.Enabled = on }

// MetaRule returns the meta-rule settings.
func (s *Simulator) MetaRule() MetaRule { return s.stepper.Meta }

// SetReversible selects second-order stepping.
func (s *Simulator) SetReversible(on bool) { s.stepper.Reversible = on }

// Reversible reports whether second-order stepping is selected.
func (s *Simulator) Reversible() bool { return s.stepper.Reversible }

// SetWorkers sets how many goroutines step each row. Values below 2 step
// rows serially.
func (s *Simulator) SetWorkers(n int) { s.stepper.Workers = n }

// SetInitialCondition loads raw packed bytes as the initial row. Empty
// input restores the centered single-cell seed.
func (s *Simulator) SetInitialCondition(b []byte) {
	s.initText = append(s.initText[:0], b...)
	s.random = false
	s.loadInit()
}

// SeedRandom fills the initial row with random bits from seed. The same
// seed is replayed when the width changes.
func (s *Simulator) SeedRandom(seed int64) {
	s.initText = s.initText[:0]
	s.random, s.seed = true, seed
	s.loadInit()
}

// InitialCondition returns the initial row.
func (s *Simulator) InitialCondition() core.Row { return s.init }

func (s *Simulator) loadInit() {
	if s.random {
		core.NewRNG(s.seed).FillRow(s.init)
		return
	}
	if len(s.initText) == 0 {
		s.init.SeedCenter()
		return
	}
	s.init.Load(s.initText)
}

// Run recomputes the whole history from the initial row and returns it.
func (s *Simulator) Run() *core.Matrix {
	copy(s.steps.Row(0), s.init)

	prev := s.zero
	for t := 1; t < s.h; t++ {
		cur := s.steps.Row(t - 1)
		s.stepper.stepInto(s.steps.Row(t), prev, cur)
		if s.stepper.Reversible {
			prev = cur
		} else {
			prev = s.zero
		}
	}
	return s.steps
}

// Matrix exposes the history of the last run.
func (s *Simulator) Matrix() *core.Matrix { return s.steps }

// Cell reports whether cell col of row t is set in the last run.
func (s *Simulator) Cell(col, t int) bool { return s.steps.Cell(col, t) }

// SampleCell maps a pixel of a destW by destH raster onto the history.
func (s *Simulator) SampleCell(x, y, destW, destH int) (bool, error) {
	return render.SampleCell(s.steps, x, y, destW, destH)
}
