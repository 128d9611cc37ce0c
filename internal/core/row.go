package core

import "encoding/binary"

const (
	// WordBits is the number of cells packed into one word.
	WordBits = 64
	// WordBytes is the size of one word in bytes.
	WordBytes = WordBits / 8

	wordLog = 6
	wordMax = ^uint64(0)
)

// Row is one generation of the automaton packed into words. Bit 63 of a word
// is its leftmost cell. The row is circular.
type Row []uint64

// NewRow allocates a zeroed row of w words.
func NewRow(w int) Row { return make(Row, w) }

// Width returns the number of words in the row.
func (r Row) Width() int { return len(r) }

// Cells returns the number of cells in the row.
func (r Row) Cells() int { return len(r) * WordBits }

// Neighbors returns the words to the left and right of word i, wrapping at
// both ends. A single word row is its own neighbor on both sides.
func (r Row) Neighbors(i int) (left, right uint64) {
	last := len(r) - 1
	switch {
	case last == 0:
		return r[0], r[0]
	case i == 0:
		return r[last], r[1]
	case i == last:
		return r[last-1], r[0]
	}
	return r[i-1], r[i+1]
}

// Bit reports whether cell col is set. col counts from the leftmost cell.
func (r Row) Bit(col int) bool {
	return r[col>>wordLog]>>(WordBits-1-col&(WordBits-1))&1 == 1
}

// SetBit sets or clears cell col.
func (r Row) SetBit(col int, on bool) {
	mask := uint64(1) << (WordBits - 1 - col&(WordBits-1))
	if on {
		r[col>>wordLog] |= mask
		return
	}
	r[col>>wordLog] &^= mask
}

// Clear zeroes every word.
func (r Row) Clear() {
	for i := range r {
		r[i] = 0
	}
}

// SeedCenter clears the row and sets the single cell that keeps a lone seed
// visually centered for any width parity.
func (r Row) SeedCenter() {
	r.Clear()
	if len(r) == 0 {
		return
	}
	w := len(r)
	r[w/2] = 1 << (WordBits - 1 - (w*32)%WordBits)
}

// Load clears the row and copies raw packed bytes into it. Each group of
// eight bytes fills one word little-endian; input is truncated to the row
// width and a short tail is zero padded.
func (r Row) Load(b []byte) {
	r.Clear()
	var buf [WordBytes]byte
	for i := range r {
		off := i * WordBytes
		if off >= len(b) {
			return
		}
		end := off + WordBytes
		if end > len(b) {
			buf = [WordBytes]byte{}
			copy(buf[:], b[off:])
			r[i] = binary.LittleEndian.Uint64(buf[:])
			return
		}
		r[i] = binary.LittleEndian.Uint64(b[off:end])
	}
}

// Equal reports whether both rows hold the same words.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}
