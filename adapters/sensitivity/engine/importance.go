package engine

import (
	"context"
	"math"

	"gosens/domain/core"
	"gosens/domain/effects"
	"gosens/domain/scenario"
	"gosens/ports"
)

// degenerateSumThreshold guards the DIM normalization. Elasticity sums
// below this magnitude make the normalized vector meaningless.
const degenerateSumThreshold = 1e-12

// Importance computes elasticities E_i = df/dx_i * x_i0 / y0 at the base
// case and normalizes them into the differential importance measure
// D_i = E_i / sum(E). O(n) in oracle calls; no subset lattice involved.
func (e *Engine) Importance(ctx context.Context, scn scenario.Scenario, m ports.Model, oracle ports.GradientOracle) (*effects.Importance, error) {
	if err := scn.Validate(); err != nil {
		return nil, err
	}
	base := scn.Base
	keys := base.Keys()

	y0, err := e.evaluate(ctx, m, base)
	if err != nil {
		return nil, err
	}
	if y0 == 0 {
		return nil, core.ErrZeroBaseOutput
	}

	grad, err := oracle.Gradient(ctx, base)
	if err != nil {
		return nil, err
	}

	elasticity := make(map[core.ParameterKey]float64, len(keys))
	sum := 0.0
	for _, k := range keys {
		d, ok := grad[k]
		if !ok {
			return nil, core.NewParameterAbsentError(k)
		}
		x0, _ := base.Value(k)
		elasticity[k] = d * x0 / y0
		sum += elasticity[k]
	}

	if math.Abs(sum) < degenerateSumThreshold {
		return nil, core.ErrDegenerateNormalization
	}

	dim := make(map[core.ParameterKey]float64, len(keys))
	for k, v := range elasticity {
		dim[k] = v / sum
	}

	return &effects.Importance{
		Keys:       keys,
		BaseValue:  y0,
		Elasticity: elasticity,
		DIM:        dim,
	}, nil
}
