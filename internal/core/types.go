package core

// Size describes the dimensions of a simulation history in words and rows.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in one row.
func (s Size) Cells() int { return s.W * WordBits }

// Automaton is the minimal contract the viewer and exporters consume.
type Automaton interface {
	Name() string
	Size() Size
	Run() *Matrix
	Matrix() *Matrix
}
