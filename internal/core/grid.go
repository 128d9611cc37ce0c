package core

// MaxWords caps the size of a history matrix.
const MaxWords = 1 << 28

// Matrix stores the packed history of a run in row-major order: H rows of
// W words each.
type Matrix struct {
	W, H int
	data []uint64
}

// NewMatrix allocates a matrix with the given dimensions.
func NewMatrix(w, h int) (*Matrix, error) {
	m := &Matrix{}
	if err := m.Resize(w, h); err != nil {
		return nil, err
	}
	return m, nil
}

// Resize changes the dimensions of the matrix. The backing store is only
// reallocated when the new shape does not fit the current capacity. The
// matrix is zeroed on success and untouched on failure.
func (m *Matrix) Resize(w, h int) error {
	if w < 1 {
		return ConfigError("resize", "width must be at least 1, got %d", w)
	}
	if h < 1 {
		return AllocError("resize", "height must be at least 1, got %d", h)
	}
	if w > MaxWords/h {
		return AllocError("resize", "%d x %d words exceeds the %d word limit", w, h, MaxWords)
	}
	total := w * h
	if cap(m.data) < total {
		m.data = make([]uint64, total)
	} else {
		m.data = m.data[:total]
		m.Clear()
	}
	m.W, m.H = w, h
	return nil
}

// Words exposes the backing slice.
func (m *Matrix) Words() []uint64 { return m.data }

// Row returns a view of row y.
func (m *Matrix) Row(y int) Row { return Row(m.data[y*m.W : (y+1)*m.W : (y+1)*m.W]) }

// Index returns the linear slice index for word x of row y.
func (m *Matrix) Index(x, y int) int { return y*m.W + x }

// Cell reports whether cell col of row y is set.
func (m *Matrix) Cell(col, y int) bool { return m.Row(y).Bit(col) }

// Size returns the dimensions of the matrix.
func (m *Matrix) Size() Size { return Size{W: m.W, H: m.H} }

// Clear fills the matrix with zeros.
func (m *Matrix) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{W: m.W, H: m.H, data: make([]uint64, len(m.data))}
	copy(c.data, m.data)
	return c
}
