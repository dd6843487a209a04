package engine

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"gosens/domain/core"
	"gosens/domain/effects"
	"gosens/domain/scenario"
	"gosens/ports"
)

// Decompose computes the full effect hierarchy of a scenario's upside case:
// one interaction effect per non-empty parameter subset, 2^n model
// evaluations in total (base included).
func (e *Engine) Decompose(ctx context.Context, scn scenario.Scenario, m ports.Model) (*effects.Hierarchy, error) {
	if err := scn.Validate(); err != nil {
		return nil, err
	}
	return e.DecomposeToward(ctx, scn.Base, scn.Upside, m)
}

// DecomposeToward decomposes the move from base to target. The downside
// (worst-case) hierarchy is this same operation with the downside vector
// as target.
func (e *Engine) DecomposeToward(ctx context.Context, base, target scenario.Vector, m ports.Model) (*effects.Hierarchy, error) {
	if err := scenario.ValidatePair(base, target); err != nil {
		return nil, err
	}
	n := base.Len()
	if n > effects.MaxFactors {
		return nil, fmt.Errorf("%w: %d parameters, limit %d", core.ErrTooManyFactors, n, effects.MaxFactors)
	}

	y0, err := e.evaluate(ctx, m, base)
	if err != nil {
		return nil, err
	}

	// Enumerate subsets in increasing size. The Möbius step below requires
	// every smaller subset's effect before a larger one is touched, so the
	// ordering is part of the algorithm, not a presentation choice.
	masks := make([]effects.Subset, 0, 1<<uint(n)-1)
	for k := 1; k <= n; k++ {
		for _, comb := range combin.Combinations(n, k) {
			var s effects.Subset
			for _, i := range comb {
				s |= effects.Singleton(i)
			}
			masks = append(masks, s)
		}
	}

	mixed, err := e.evaluateSubsets(ctx, base, target, m, masks)
	if err != nil {
		return nil, err
	}

	// Inductive Möbius step: the effect of S is its raw mixed delta minus
	// the effects of all proper non-empty subsets of S.
	phi := make(map[effects.Subset]float64, len(masks))
	for _, s := range masks {
		effect := mixed[s] - y0
		for t := (s - 1) & s; t > 0; t = (t - 1) & s {
			effect -= phi[t]
		}
		phi[s] = effect
	}

	h := &effects.Hierarchy{
		Keys:        base.Keys(),
		BaseValue:   y0,
		TotalDelta:  mixed[effects.Full(n)] - y0,
		Effects:     phi,
		Evaluations: len(masks) + 1,
	}

	// Telescoping self-check. A violation here means a broken model (e.g.
	// non-deterministic output), not floating-point noise.
	if !withinTolerance(h.Sum(), h.TotalDelta, e.tolerance) {
		return nil, core.NewModelEvaluationError(m.Name(), base.String(),
			fmt.Errorf("telescoping identity violated: sum %g vs delta %g", h.Sum(), h.TotalDelta))
	}
	return h, nil
}

// evaluateSubsets computes g(S) for every mask. Evaluations are independent
// pure calls and run concurrently when the engine allows it; any failure
// aborts the whole batch, so no partial hierarchy can leak out.
func (e *Engine) evaluateSubsets(ctx context.Context, base, target scenario.Vector, m ports.Model, masks []effects.Subset) (map[effects.Subset]float64, error) {
	results := make([]float64, len(masks))

	if e.maxParallel <= 1 {
		for i, s := range masks {
			y, err := e.evaluate(ctx, m, base.Mix(target, s.Contains))
			if err != nil {
				return nil, err
			}
			results[i] = y
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.maxParallel)
		for i, s := range masks {
			i, s := i, s
			g.Go(func() error {
				y, err := e.evaluate(gctx, m, base.Mix(target, s.Contains))
				if err != nil {
					return err
				}
				results[i] = y
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := make(map[effects.Subset]float64, len(masks))
	for i, s := range masks {
		out[s] = results[i]
	}
	return out, nil
}

func withinTolerance(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return diff <= tol*scale
}
