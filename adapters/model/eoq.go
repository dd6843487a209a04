package model

import (
	"context"
	"fmt"
	"math"

	"gosens/domain/core"
	"gosens/domain/scenario"
)

// Parameter keys of the Harris economic order quantity model.
const (
	KeyMovement core.ParameterKey = "m" // monthly movement (units per month)
	KeyUnitCost core.ParameterKey = "c" // unit cost (dollars)
	KeySetup    core.ParameterKey = "s" // setup cost per order (dollars)
)

// EOQ is Harris's 1913 economic order quantity in its original monthly
// form, Q(m,c,s) = sqrt(240*m*s/c). The 240 folds together 12 months and
// the 10% carrying charge of the original derivation. All three inputs
// must be strictly positive.
type EOQ struct{}

// NewEOQ creates the EOQ model.
func NewEOQ() *EOQ {
	return &EOQ{}
}

// Name returns the model name.
func (m *EOQ) Name() string {
	return "harris-eoq"
}

// BaseCase returns the worked example's base point:
// m=1230 units/month, c=$0.0135, s=$2.15.
func (m *EOQ) BaseCase() scenario.Vector {
	return scenario.MustNew(
		[]core.ParameterKey{KeyMovement, KeyUnitCost, KeySetup},
		map[core.ParameterKey]float64{
			KeyMovement: 1230.0,
			KeyUnitCost: 0.0135,
			KeySetup:    2.15,
		},
	)
}

// Evaluate computes the order quantity at a point.
func (m *EOQ) Evaluate(_ context.Context, point scenario.Vector) (float64, error) {
	mv, c, s, err := m.inputs(point)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(240 * mv * s / c), nil
}

// Gradient returns the analytic partial derivatives. For Q = sqrt(240*m*s/c):
// dQ/dm = Q/(2m), dQ/ds = Q/(2s), dQ/dc = -Q/(2c).
func (m *EOQ) Gradient(ctx context.Context, point scenario.Vector) (map[core.ParameterKey]float64, error) {
	mv, c, s, err := m.inputs(point)
	if err != nil {
		return nil, err
	}
	q := math.Sqrt(240 * mv * s / c)
	return map[core.ParameterKey]float64{
		KeyMovement: q / (2 * mv),
		KeySetup:    q / (2 * s),
		KeyUnitCost: -q / (2 * c),
	}, nil
}

func (m *EOQ) inputs(point scenario.Vector) (mv, c, s float64, err error) {
	mv, ok := point.Value(KeyMovement)
	if !ok {
		return 0, 0, 0, core.NewParameterAbsentError(KeyMovement)
	}
	c, ok = point.Value(KeyUnitCost)
	if !ok {
		return 0, 0, 0, core.NewParameterAbsentError(KeyUnitCost)
	}
	s, ok = point.Value(KeySetup)
	if !ok {
		return 0, 0, 0, core.NewParameterAbsentError(KeySetup)
	}
	if mv <= 0 || c <= 0 || s <= 0 {
		return 0, 0, 0, core.NewModelEvaluationError(m.Name(), point.String(),
			fmt.Errorf("all inputs must be strictly positive"))
	}
	return mv, c, s, nil
}
