package ports

import (
	"context"

	"gosens/domain/core"
	"gosens/domain/scenario"
)

// Model is the external scalar function under analysis. Implementations
// must be pure and deterministic: the decomposer may evaluate disjoint
// mixed points concurrently, so Evaluate has to be safely re-entrant.
type Model interface {
	Name() string
	Evaluate(ctx context.Context, point scenario.Vector) (float64, error)
}

// GradientOracle supplies exact (or approximated) partial derivatives of a
// model at a point, keyed by parameter. It backs the elasticity/DIM path
// and is deliberately separate from Model: derivatives may come from an
// analytic form, automatic differentiation, or finite differences.
type GradientOracle interface {
	Gradient(ctx context.Context, point scenario.Vector) (map[core.ParameterKey]float64, error)
}
