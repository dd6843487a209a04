package effects

import (
	"gosens/domain/core"
)

// Summary is the linear-cost alternative to a full hierarchy: per-parameter
// first-order, total-order, and interaction measures. Suitable when 2^n
// evaluations are out of the question.
type Summary struct {
	Keys        []core.ParameterKey           `json:"keys"`
	BaseValue   float64                       `json:"base_value"`
	TotalDelta  float64                       `json:"total_delta"`
	FirstOrder  map[core.ParameterKey]float64 `json:"first_order"`
	TotalOrder  map[core.ParameterKey]float64 `json:"total_order"`
	Interaction map[core.ParameterKey]float64 `json:"interaction"`
	Evaluations int                           `json:"evaluations"`
}

// Importance carries the differentiation-based measures: elasticities and
// the normalized differential importance vector (DIM), which sums to 1.
type Importance struct {
	Keys       []core.ParameterKey           `json:"keys"`
	BaseValue  float64                       `json:"base_value"`
	Elasticity map[core.ParameterKey]float64 `json:"elasticity"`
	DIM        map[core.ParameterKey]float64 `json:"dim"`
}
