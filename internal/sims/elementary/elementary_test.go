package elementary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfxprim/automata/internal/core"
)

func newSim(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestRunShape(t *testing.T) {
	for _, width := range []int{1, 2, 5} {
		for _, height := range []int{1, 2, 17} {
			s := newSim(t, Config{Width: width, Height: height, Rules: Table{30}})
			m := s.Run()
			require.Equal(t, height, m.H)
			require.Equal(t, width, m.W)
			require.Len(t, m.Words(), width*height)
			for y := 0; y < m.H; y++ {
				require.Len(t, m.Row(y), width)
			}
		}
	}
}

func TestRunRule110Scenario(t *testing.T) {
	s := newSim(t, Config{Width: 1, Height: 3, Rules: Table{110}})
	m := s.Run()
	assert.Equal(t, uint64(1<<31), m.Row(0)[0])
	assert.Equal(t, uint64(0x0000000180000000), m.Row(1)[0])
	assert.Equal(t, uint64(0x0000000380000000), m.Row(2)[0])
	assert.True(t, s.Cell(32, 0))
	assert.True(t, s.Cell(31, 1))
}

func TestRunMatchesReference(t *testing.T) {
	s := newSim(t, Config{Width: 3, Height: 40, Rules: Table{30}})
	s.SeedRandom(1)
	m := s.Run()
	for y := 1; y < m.H; y++ {
		require.Equal(t, referenceRow(30, m.Row(y-1)), m.Row(y), "row %d", y)
	}
}

func TestRunRuleZeroClearsHistory(t *testing.T) {
	s := newSim(t, Config{Width: 2, Height: 8, Rules: Table{0}})
	s.SetInitialCondition([]byte("not an empty row"))
	m := s.Run()
	assert.NotEqual(t, core.Row{0, 0}, m.Row(0))
	for y := 1; y < m.H; y++ {
		assert.Equal(t, core.Row{0, 0}, m.Row(y), "row %d", y)
	}
}

func TestRunRule255FillsHistory(t *testing.T) {
	s := newSim(t, Config{Width: 3, Height: 6, Rules: Table{255}})
	s.SeedRandom(4)
	m := s.Run()
	full := ^uint64(0)
	for y := 1; y < m.H; y++ {
		assert.Equal(t, core.Row{full, full, full}, m.Row(y), "row %d", y)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	s := newSim(t, Config{
		Width:      4,
		Height:     64,
		Rules:      Table{30, 110},
		Meta:       MetaRule{Code: 0xb4, Enabled: true},
		Reversible: true,
	})
	s.SeedRandom(77)
	first := s.Run().Clone()
	second := s.Run()
	assert.Equal(t, first.Words(), second.Words())
}

func TestReversibleRunCanBeReversed(t *testing.T) {
	for _, rule := range []uint8{110, 30, 90} {
		s := newSim(t, Config{Width: 2, Height: 32, Rules: Table{rule}, Reversible: true})
		s.SeedRandom(int64(rule))
		m := s.Run()

		back := Stepper{Rules: Table{rule}, Reversible: true}
		for tt := 1; tt+1 < m.H; tt++ {
			// state[t+1] = f(state[t]) ^ state[t-1], so stepping state[t] with
			// state[t+1] as the older row yields state[t-1].
			got := back.StepRow(m.Row(tt+1), m.Row(tt))
			require.Equal(t, m.Row(tt-1), got, "rule %d t=%d", rule, tt)
		}
	}
}

func TestReversibleFirstStepIgnoresHistory(t *testing.T) {
	plain := newSim(t, Config{Width: 1, Height: 2, Rules: Table{110}})
	rev := newSim(t, Config{Width: 1, Height: 2, Rules: Table{110}, Reversible: true})
	assert.Equal(t, plain.Run().Row(1), rev.Run().Row(1))
}

func TestMetaWithSingleRuleMatchesStatic(t *testing.T) {
	static := newSim(t, Config{Width: 4, Height: 48, Rules: Table{110}})
	meta := newSim(t, Config{Width: 4, Height: 48, Rules: Table{110}, Meta: MetaRule{Code: 0x5a, Enabled: true}})
	static.SeedRandom(9)
	meta.SeedRandom(9)
	assert.Equal(t, static.Run().Words(), meta.Run().Words())
}

func TestWorkersMatchSerialRun(t *testing.T) {
	cfg := Config{Width: 300, Height: 20, Rules: Table{30, 45}, Reversible: true}
	serial := newSim(t, cfg)
	cfg.Workers = 4
	par := newSim(t, cfg)
	serial.SeedRandom(3)
	par.SeedRandom(3)
	assert.Equal(t, serial.Run().Words(), par.Run().Words())
}

func TestConfigurationChangesRecompute(t *testing.T) {
	s := newSim(t, Config{Width: 1, Height: 16, Rules: Table{90}})
	first := s.Run().Clone()

	require.NoError(t, s.SetRules([]uint8{30}))
	second := s.Run().Clone()
	assert.NotEqual(t, first.Words(), second.Words())
	assert.Equal(t, first.Row(0), second.Row(0))

	s.SetReversible(true)
	third := s.Run().Clone()
	assert.NotEqual(t, second.Words(), third.Words())

	s.SetReversible(false)
	assert.Equal(t, second.Words(), s.Run().Words())
}

func TestConfigureErrorsKeepState(t *testing.T) {
	s := newSim(t, Config{Width: 2, Height: 4, Rules: Table{110}})
	before := s.Run().Clone()

	err := s.Configure(0, 4)
	assert.True(t, errors.Is(err, core.ErrConfiguration), "%v", err)

	err = s.Configure(2, 0)
	assert.True(t, errors.Is(err, core.ErrAllocation), "%v", err)

	err = s.Configure(core.MaxWords, 2)
	assert.True(t, errors.Is(err, core.ErrAllocation), "%v", err)

	err = s.SetRules(nil)
	assert.True(t, errors.Is(err, core.ErrConfiguration), "%v", err)

	assert.Equal(t, core.Size{W: 2, H: 4}, s.Size())
	assert.Equal(t, Table{110}, s.Rules())
	assert.Equal(t, before.Words(), s.Matrix().Words())
	assert.Equal(t, before.Words(), s.Run().Words())
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Width: 0, Height: 4})
	assert.True(t, errors.Is(err, core.ErrConfiguration))

	_, err = New(Config{Width: 1, Height: 0})
	assert.True(t, errors.Is(err, core.ErrAllocation))

	_, err = New(Config{Width: 1, Height: 2, Rules: Table{}})
	assert.True(t, errors.Is(err, core.ErrConfiguration))
}

func TestInitialCondition(t *testing.T) {
	s := newSim(t, Config{Width: 2, Height: 2})

	s.SetInitialCondition([]byte{0xff})
	assert.Equal(t, core.Row{0xff, 0}, s.InitialCondition())

	s.SetInitialCondition(nil)
	assert.Equal(t, core.Row{0, 1 << 63}, s.InitialCondition())

	s.SetInitialCondition([]byte{1, 0, 0, 0, 0, 0, 0, 0, 2})
	require.NoError(t, s.Configure(1, 2))
	assert.Equal(t, core.Row{1}, s.InitialCondition(), "shrinking truncates the stored bytes")
	require.NoError(t, s.Configure(3, 2))
	assert.Equal(t, core.Row{1, 2, 0}, s.InitialCondition(), "growing replays the stored bytes")
}

func TestSeedRandomIsDeterministic(t *testing.T) {
	a := newSim(t, Config{Width: 4, Height: 2})
	b := newSim(t, Config{Width: 4, Height: 2})
	a.SeedRandom(12)
	b.SeedRandom(12)
	assert.Equal(t, a.InitialCondition(), b.InitialCondition())

	b.SeedRandom(13)
	assert.NotEqual(t, a.InitialCondition(), b.InitialCondition())

	require.NoError(t, a.Configure(4, 8))
	require.NoError(t, b.Configure(4, 8))
	b.SeedRandom(12)
	assert.Equal(t, a.InitialCondition(), b.InitialCondition())
}

func TestConfigureSameShapeKeepsHistory(t *testing.T) {
	s := newSim(t, Config{Width: 1, Height: 4, Rules: Table{30}})
	m := s.Run()
	words := &m.Words()[0]
	require.NoError(t, s.Configure(1, 4))
	assert.Same(t, words, &s.Matrix().Words()[0])
	assert.NotZero(t, s.Matrix().Row(3)[0])
}

func TestSampleCellUnitScale(t *testing.T) {
	s := newSim(t, Config{Width: 2, Height: 10, Rules: Table{30}})
	m := s.Run()
	w, h := m.W*core.WordBits, m.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got, err := s.SampleCell(x, y, w, h)
			require.NoError(t, err)
			require.Equal(t, m.Cell(x, y), got, "pixel (%d,%d)", x, y)
		}
	}
	_, err := s.SampleCell(0, 0, w+1, h)
	assert.True(t, errors.Is(err, core.ErrConfiguration))
}

func TestParametersRoundTrip(t *testing.T) {
	s := newSim(t, Config{Width: 2, Height: 8, Rules: Table{30, 90}})
	snap := s.Parameters()

	p, ok := snap.Lookup("rules")
	require.True(t, ok)
	assert.Equal(t, "30,90", p.Value)
	p, ok = snap.Lookup("w")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)

	assert.True(t, s.SetIntParameter("rule", 110))
	assert.Equal(t, Table{110, 90}, s.Rules())
	assert.True(t, s.SetIntParameter("meta_rule", 7))
	assert.Equal(t, uint8(7), s.MetaRule().Code)
	assert.False(t, s.SetIntParameter("rule", 256))
	assert.False(t, s.SetIntParameter("nope", 1))

	assert.True(t, s.SetBoolParameter("meta", true))
	assert.True(t, s.MetaRule().Enabled)
	assert.True(t, s.SetBoolParameter("reversible", true))
	assert.True(t, s.Reversible())
	assert.False(t, s.SetBoolParameter("nope", true))

	p, _ = s.Parameters().Lookup("reversible")
	assert.Equal(t, "true", p.Value)
	assert.Len(t, s.ParameterControls(), 4)
}
