package scenario

import (
	"fmt"
	"sort"
	"strings"

	"gosens/domain/core"
)

// Vector is an ordered collection of named scalar parameters.
// The key order is fixed at construction time and defines the bit
// positions used by subset decomposition.
type Vector struct {
	keys []core.ParameterKey
	vals map[core.ParameterKey]float64
}

// New creates a vector with an explicit key order.
func New(keys []core.ParameterKey, vals map[core.ParameterKey]float64) (Vector, error) {
	if len(keys) == 0 {
		return Vector{}, core.ErrEmptyVector
	}
	seen := make(map[core.ParameterKey]bool, len(keys))
	copied := make(map[core.ParameterKey]float64, len(keys))
	for _, k := range keys {
		if seen[k] {
			return Vector{}, core.NewInvalidInputError(fmt.Sprintf("duplicate parameter %s", k))
		}
		seen[k] = true
		v, ok := vals[k]
		if !ok {
			return Vector{}, core.NewParameterAbsentError(k)
		}
		copied[k] = v
	}
	if len(vals) != len(keys) {
		return Vector{}, core.NewInvalidInputError("value map carries keys outside the declared order")
	}
	ordered := make([]core.ParameterKey, len(keys))
	copy(ordered, keys)
	return Vector{keys: ordered, vals: copied}, nil
}

// FromMap creates a vector with keys in lexical order.
func FromMap(vals map[core.ParameterKey]float64) (Vector, error) {
	keys := make([]core.ParameterKey, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return New(keys, vals)
}

// MustNew is a construction helper for fixtures and examples.
func MustNew(keys []core.ParameterKey, vals map[core.ParameterKey]float64) Vector {
	v, err := New(keys, vals)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of parameters.
func (v Vector) Len() int {
	return len(v.keys)
}

// Keys returns the parameter keys in vector order.
func (v Vector) Keys() []core.ParameterKey {
	out := make([]core.ParameterKey, len(v.keys))
	copy(out, v.keys)
	return out
}

// Value returns the value for a key.
func (v Vector) Value(k core.ParameterKey) (float64, bool) {
	val, ok := v.vals[k]
	return val, ok
}

// At returns the value at a position in vector order.
func (v Vector) At(i int) float64 {
	return v.vals[v.keys[i]]
}

// KeyAt returns the key at a position in vector order.
func (v Vector) KeyAt(i int) core.ParameterKey {
	return v.keys[i]
}

// IndexOf returns the position of a key, or -1.
func (v Vector) IndexOf(k core.ParameterKey) int {
	for i, key := range v.keys {
		if key == k {
			return i
		}
	}
	return -1
}

// With returns a copy with one value replaced.
func (v Vector) With(k core.ParameterKey, val float64) (Vector, error) {
	if _, ok := v.vals[k]; !ok {
		return Vector{}, core.NewParameterAbsentError(k)
	}
	out := v.Clone()
	out.vals[k] = val
	return out, nil
}

// Clone returns a deep copy.
func (v Vector) Clone() Vector {
	keys := make([]core.ParameterKey, len(v.keys))
	copy(keys, v.keys)
	vals := make(map[core.ParameterKey]float64, len(v.vals))
	for k, val := range v.vals {
		vals[k] = val
	}
	return Vector{keys: keys, vals: vals}
}

// Values returns the values in vector order.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.keys))
	for i, k := range v.keys {
		out[i] = v.vals[k]
	}
	return out
}

// Scale returns a copy with every value multiplied by factor.
func (v Vector) Scale(factor float64) Vector {
	out := v.Clone()
	for k := range out.vals {
		out.vals[k] *= factor
	}
	return out
}

// Mix returns the point where positions selected by pick take values from
// other and the rest keep this vector's values. Both vectors must share the
// same key order; ValidatePair enforces that upstream.
func (v Vector) Mix(other Vector, pick func(i int) bool) Vector {
	out := v.Clone()
	for i, k := range v.keys {
		if pick(i) {
			out.vals[k] = other.vals[k]
		}
	}
	return out
}

// String renders the vector for error messages and logs.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range v.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", k, v.vals[k])
	}
	b.WriteString("}")
	return b.String()
}
