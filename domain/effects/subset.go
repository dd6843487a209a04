package effects

import (
	"math/bits"
	"strings"

	"gosens/domain/core"
)

// MaxFactors bounds the number of parameters a decomposition accepts.
// The subset lattice has 2^n-1 non-empty members, so anything near this
// limit is already far beyond practical evaluation budgets.
const MaxFactors = 30

// Subset selects which parameters take their perturbed value, as a bitmask
// over vector positions. The empty subset is the base case itself.
type Subset uint32

// Singleton returns the subset containing only position i.
func Singleton(i int) Subset {
	return Subset(1) << uint(i)
}

// Full returns the subset containing every position 0..n-1.
func Full(n int) Subset {
	return Subset(1)<<uint(n) - 1
}

// Contains reports whether position i is in the subset.
func (s Subset) Contains(i int) bool {
	return s&(Subset(1)<<uint(i)) != 0
}

// Without returns the subset with position i removed.
func (s Subset) Without(i int) Subset {
	return s &^ (Subset(1) << uint(i))
}

// Size returns the number of selected positions.
func (s Subset) Size() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether no position is selected.
func (s Subset) IsEmpty() bool {
	return s == 0
}

// Members resolves the subset against a key order.
func (s Subset) Members(keys []core.ParameterKey) []core.ParameterKey {
	out := make([]core.ParameterKey, 0, s.Size())
	for i, k := range keys {
		if s.Contains(i) {
			out = append(out, k)
		}
	}
	return out
}

// Label renders the subset as "{m,c}" for reports and error messages.
func (s Subset) Label(keys []core.ParameterKey) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for i, k := range keys {
		if !s.Contains(i) {
			continue
		}
		if !first {
			b.WriteString(",")
		}
		first = false
		b.WriteString(string(k))
	}
	b.WriteString("}")
	return b.String()
}
