package render

import "github.com/gfxprim/automata/internal/core"

// Sampler maps pixels of a destination raster onto cells of a history
// matrix by nearest neighbor. Destinations larger than the matrix are
// rejected at construction.
type Sampler struct {
	m            *core.Matrix
	destW, destH int
	scaleX       float64
	scaleY       float64
}

// NewSampler prepares a sampler for a destW by destH raster.
func NewSampler(m *core.Matrix, destW, destH int) (*Sampler, error) {
	if m == nil || m.W < 1 || m.H < 1 {
		return nil, core.ConfigError("sample", "history is empty")
	}
	if destW < 1 || destH < 1 {
		return nil, core.ConfigError("sample", "destination %dx%d has no pixels", destW, destH)
	}
	cells := m.W * core.WordBits
	if destW > cells || destH > m.H {
		return nil, core.ConfigError("sample", "destination %dx%d exceeds history %dx%d", destW, destH, cells, m.H)
	}
	return &Sampler{
		m:      m,
		destW:  destW,
		destH:  destH,
		scaleX: float64(cells) / float64(destW),
		scaleY: float64(m.H) / float64(destH),
	}, nil
}

// Bounds returns the destination dimensions.
func (s *Sampler) Bounds() (int, int) { return s.destW, s.destH }

// Source returns the matrix cell behind pixel (x, y).
func (s *Sampler) Source(x, y int) (col, row int) {
	return int(float64(x) * s.scaleX), int(float64(y) * s.scaleY)
}

// At returns the cell behind pixel (x, y). The pixel must lie inside the
// destination bounds.
func (s *Sampler) At(x, y int) bool {
	col, row := s.Source(x, y)
	return s.m.Cell(col, row)
}

// SampleCell returns the cell behind pixel (x, y) of a destW by destH
// raster, or a configuration error when the request does not fit m.
func SampleCell(m *core.Matrix, x, y, destW, destH int) (bool, error) {
	s, err := NewSampler(m, destW, destH)
	if err != nil {
		return false, err
	}
	if x < 0 || y < 0 || x >= destW || y >= destH {
		return false, core.ConfigError("sample", "pixel (%d,%d) outside %dx%d", x, y, destW, destH)
	}
	return s.At(x, y), nil
}
