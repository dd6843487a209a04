package effects

import (
	"gosens/domain/core"
)

// Hierarchy is the complete finite-difference effect decomposition of a
// scenario: one interaction effect per non-empty subset of parameters.
// The effects over all 2^n-1 subsets telescope to TotalDelta.
type Hierarchy struct {
	Keys        []core.ParameterKey `json:"keys"`
	BaseValue   float64             `json:"base_value"`  // y0 = model(x0)
	TotalDelta  float64             `json:"total_delta"` // model(x+) - y0
	Effects     map[Subset]float64  `json:"effects"`
	Evaluations int                 `json:"evaluations"` // model calls spent, base included
}

// Factors returns the number of parameters.
func (h *Hierarchy) Factors() int {
	return len(h.Keys)
}

// Effect returns the interaction effect attributed to a subset.
func (h *Hierarchy) Effect(s Subset) (float64, bool) {
	v, ok := h.Effects[s]
	return v, ok
}

// EffectOf looks up the effect for a set of keys.
func (h *Hierarchy) EffectOf(keys ...core.ParameterKey) (float64, bool) {
	var s Subset
	for _, k := range keys {
		i := h.indexOf(k)
		if i < 0 {
			return 0, false
		}
		s |= Singleton(i)
	}
	return h.Effect(s)
}

// Order returns all effects of a given subset size.
func (h *Hierarchy) Order(size int) map[Subset]float64 {
	out := make(map[Subset]float64)
	for s, v := range h.Effects {
		if s.Size() == size {
			out[s] = v
		}
	}
	return out
}

// FirstOrder returns the singleton effects keyed by parameter.
func (h *Hierarchy) FirstOrder() map[core.ParameterKey]float64 {
	out := make(map[core.ParameterKey]float64, len(h.Keys))
	for i, k := range h.Keys {
		out[k] = h.Effects[Singleton(i)]
	}
	return out
}

// TotalOrderFor sums every effect of every subset containing the parameter.
// This matches the total-order measure of the cheap summary exactly.
func (h *Hierarchy) TotalOrderFor(key core.ParameterKey) (float64, bool) {
	i := h.indexOf(key)
	if i < 0 {
		return 0, false
	}
	total := 0.0
	for s, v := range h.Effects {
		if s.Contains(i) {
			total += v
		}
	}
	return total, true
}

// Sum adds every effect in the hierarchy. The telescoping identity
// guarantees Sum() == TotalDelta up to floating-point noise.
func (h *Hierarchy) Sum() float64 {
	total := 0.0
	for _, v := range h.Effects {
		total += v
	}
	return total
}

func (h *Hierarchy) indexOf(key core.ParameterKey) int {
	for i, k := range h.Keys {
		if k == key {
			return i
		}
	}
	return -1
}
