package elementary

import (
	"strconv"
	"strings"

	"github.com/gfxprim/automata/internal/core"
)

// MaxRules is the longest rule table accepted.
const MaxRules = 256

// Table is an ordered list of Wolfram rule codes. Word i of a row uses
// entry i mod len(t) unless a meta-rule picks the entry instead.
type Table []uint8

// NewTable validates codes and returns a copy of them as a Table.
func NewTable(codes ...uint8) (Table, error) {
	if len(codes) == 0 {
		return nil, core.ConfigError("rules", "rule table must not be empty")
	}
	if len(codes) > MaxRules {
		return nil, core.ConfigError("rules", "rule table has %d entries, at most %d allowed", len(codes), MaxRules)
	}
	t := make(Table, len(codes))
	copy(t, codes)
	return t, nil
}

// ParseTable reads rule codes separated by commas, semicolons or spaces.
func ParseTable(s string) (Table, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	codes := make([]uint8, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return nil, core.ConfigError("rules", "invalid rule code %q: want an integer in 0..255", f)
		}
		codes = append(codes, uint8(v))
	}
	return NewTable(codes...)
}

// At returns the rule statically assigned to word i.
func (t Table) At(i int) uint8 { return t[i%len(t)] }

// String formats the table the way ParseTable reads it.
func (t Table) String() string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, ",")
}
