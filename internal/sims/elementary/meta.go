package elementary

import "github.com/gfxprim/automata/internal/core"

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	m8  = 0x00ff00ff00ff00ff
	m16 = 0x0000ffff0000ffff
	m32 = 0x00000000ffffffff
)

// MetaRule is a secondary automaton over word majorities. When enabled, bit
// n of Code picks the rule table entry for a word whose (left, center,
// right) majority pattern is n.
type MetaRule struct {
	Code    uint8
	Enabled bool
}

// PopCount returns the number of set bits in x by summing adjacent groups
// of doubling width.
func PopCount(x uint64) int {
	x = x&m1 + x>>1&m1
	x = x&m2 + x>>2&m2
	x = x&m4 + x>>4&m4
	x = x&m8 + x>>8&m8
	x = x&m16 + x>>16&m16
	x = x&m32 + x>>32&m32
	return int(x)
}

// Majority is 1 when more than half of the cells in x are set.
func Majority(x uint64) uint8 {
	if PopCount(x) > core.WordBits/2 {
		return 1
	}
	return 0
}

// MetaSelect returns the rule the meta-rule code assigns to the word center
// given its neighbors. The selected bit indexes rules modulo its length, so
// a single entry table always yields that entry.
func MetaSelect(code uint8, left, center, right uint64, rules Table) uint8 {
	n := Majority(left)<<2 | Majority(center)<<1 | Majority(right)
	return rules.At(int(code >> n & 1))
}
