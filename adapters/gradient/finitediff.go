package gradient

import (
	"context"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"gosens/domain/core"
	"gosens/domain/scenario"
	"gosens/ports"
)

// FiniteDiff approximates a model's gradient with gonum's central
// finite-difference stencil. It serves as the derivative oracle for models
// without an analytic gradient.
type FiniteDiff struct {
	model ports.Model
	step  float64
}

// NewFiniteDiff creates a finite-difference oracle. step <= 0 selects the
// stencil's default step.
func NewFiniteDiff(model ports.Model, step float64) *FiniteDiff {
	return &FiniteDiff{model: model, step: step}
}

// Gradient estimates all partial derivatives at a point.
func (g *FiniteDiff) Gradient(ctx context.Context, point scenario.Vector) (map[core.ParameterKey]float64, error) {
	keys := point.Keys()
	x := point.Values()

	// fd.Gradient takes an error-free objective; evaluation failures are
	// captured and surfaced after the sweep. Evaluation stays sequential,
	// so plain assignment is safe here.
	var evalErr error
	objective := func(xs []float64) float64 {
		if evalErr != nil {
			return 0
		}
		p := point
		for i, k := range keys {
			var err error
			p, err = p.With(k, xs[i])
			if err != nil {
				evalErr = err
				return 0
			}
		}
		y, err := g.model.Evaluate(ctx, p)
		if err != nil {
			evalErr = err
			return 0
		}
		return y
	}

	settings := &fd.Settings{Formula: fd.Central}
	if g.step > 0 {
		settings.Step = g.step
	}
	grad := fd.Gradient(nil, objective, x, settings)
	if evalErr != nil {
		return nil, core.NewModelEvaluationError(g.model.Name(), point.String(), evalErr)
	}

	out := make(map[core.ParameterKey]float64, len(keys))
	for i, k := range keys {
		if math.IsNaN(grad[i]) || math.IsInf(grad[i], 0) {
			return nil, core.NewModelEvaluationError(g.model.Name(), point.String(), core.ErrNonFiniteOutput)
		}
		out[k] = grad[i]
	}
	return out, nil
}
