package engine

import (
	"context"
	"math"

	"gosens/domain/core"
	"gosens/domain/scenario"
	"gosens/ports"
)

// Engine computes local sensitivity measures over a scenario: the full
// finite-difference effect hierarchy, the linear-cost summary, and the
// differentiation-based importance vector.
type Engine struct {
	maxParallel int
	tolerance   float64
}

// Config tunes the engine.
type Config struct {
	// MaxParallel bounds concurrent model evaluations during decomposition.
	// Values <= 1 keep evaluation sequential. Models must be re-entrant
	// before raising this.
	MaxParallel int
	// Tolerance is the relative tolerance used by the telescoping
	// self-check after decomposition.
	Tolerance float64
}

// DefaultConfig returns sequential evaluation and a 1e-9 relative tolerance.
func DefaultConfig() Config {
	return Config{MaxParallel: 1, Tolerance: 1e-9}
}

// NewEngine creates an engine from a config, applying defaults to zero fields.
func NewEngine(cfg Config) *Engine {
	if cfg.MaxParallel < 1 {
		cfg.MaxParallel = 1
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = 1e-9
	}
	return &Engine{maxParallel: cfg.MaxParallel, tolerance: cfg.Tolerance}
}

// evaluate calls the model once and rejects non-finite outputs. A failed
// evaluation always aborts the operation that requested it: a single
// missing point invalidates every effect computed from it.
func (e *Engine) evaluate(ctx context.Context, m ports.Model, point scenario.Vector) (float64, error) {
	y, err := m.Evaluate(ctx, point)
	if err != nil {
		return 0, core.NewModelEvaluationError(m.Name(), point.String(), err)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, core.NewModelEvaluationError(m.Name(), point.String(), core.ErrNonFiniteOutput)
	}
	return y, nil
}
