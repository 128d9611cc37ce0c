package elementary

import (
	"golang.org/x/sync/errgroup"

	"github.com/gfxprim/automata/internal/core"
)

// minChunk is the smallest word range handed to a stepping worker.
const minChunk = 64

// Stepper holds the per-run settings applied to every row.
type Stepper struct {
	Rules      Table
	Meta       MetaRule
	Reversible bool
	Workers    int
}

// StepRow returns the generation following cur. prev is the generation
// before cur and only matters when the stepper is reversible. The result is
// written to a fresh row.
func (s Stepper) StepRow(prev, cur core.Row) core.Row {
	next := core.NewRow(len(cur))
	s.stepInto(next, prev, cur)
	return next
}

// stepInto writes the successor of cur into next. next must not alias prev
// or cur since boundary words read wrapped neighbors of cur.
func (s Stepper) stepInto(next, prev, cur core.Row) {
	chunks := s.chunks(len(cur))
	if chunks <= 1 {
		s.stepRange(next, prev, cur, 0, len(cur))
		return
	}

	var g errgroup.Group
	size := (len(cur) + chunks - 1) / chunks
	for lo := 0; lo < len(cur); lo += size {
		lo, hi := lo, min(lo+size, len(cur))
		g.Go(func() error {
			s.stepRange(next, prev, cur, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

func (s Stepper) chunks(width int) int {
	if s.Workers <= 1 || width < 2*minChunk {
		return 1
	}
	return min(s.Workers, width/minChunk)
}

// stepRange computes words [lo, hi) of next.
func (s Stepper) stepRange(next, prev, cur core.Row, lo, hi int) {
	for i := lo; i < hi; i++ {
		left, right := cur.Neighbors(i)

		rule := s.Rules.At(i)
		if s.Meta.Enabled {
			rule = MetaSelect(s.Meta.Code, left, cur[i], right, s.Rules)
		}

		var twoAgo uint64
		if s.Reversible {
			twoAgo = prev[i]
		}

		next[i] = ApplyWord(rule, left, cur[i], right, twoAgo)
	}
}
