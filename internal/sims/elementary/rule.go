package elementary

// broadcast returns an all-ones word when bit n of b is set, else zero.
func broadcast(b uint8, n uint) uint64 {
	return uint64((b>>n)&1) * ^uint64(0)
}

// ApplyWord computes the next state of the 64 cells in center. left and
// right are the neighboring words, of which only the adjacent edge bit is
// used. The rule output is XORed with twoAgo, which is zero for an ordinary
// first-order automaton and the cell's state two steps back for a
// reversible one.
//
// Each of the eight neighborhoods is matched across the whole word at once
// and masked with the rule's output for it, so no per-cell branching occurs.
func ApplyWord(rule uint8, left, center, right, twoAgo uint64) uint64 {
	l := center>>1 | left<<63
	r := center<<1 | right>>63

	var next uint64
	for n := uint(0); n < 8; n++ {
		active := broadcast(rule, n)
		pl := broadcast(uint8(n), 2)
		pc := broadcast(uint8(n), 1)
		pr := broadcast(uint8(n), 0)

		next |= active & ^(pl ^ l) & ^(pc ^ center) & ^(pr ^ r)
	}

	return next ^ twoAgo
}
