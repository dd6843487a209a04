package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosens/domain/core"
)

func TestEOQ_BaseCaseValue(t *testing.T) {
	eoq := NewEOQ()
	ctx := context.Background()

	q, err := eoq.Evaluate(ctx, eoq.BaseCase())
	require.NoError(t, err)
	// Q = sqrt(240 * 1230 * 2.15 / 0.0135)
	assert.InDelta(t, 6856.63, q, 0.01)
}

func TestEOQ_RejectsNonPositiveInputs(t *testing.T) {
	eoq := NewEOQ()
	ctx := context.Background()

	tests := []struct {
		name  string
		key   core.ParameterKey
		value float64
	}{
		{"zero movement", KeyMovement, 0},
		{"negative movement", KeyMovement, -5},
		{"zero unit cost", KeyUnitCost, 0},
		{"negative setup", KeySetup, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := eoq.BaseCase().With(tt.key, tt.value)
			require.NoError(t, err)
			_, err = eoq.Evaluate(ctx, point)
			require.Error(t, err)
			assert.True(t, core.IsModelEvaluationError(err))
		})
	}
}

func TestEOQ_AnalyticGradient(t *testing.T) {
	eoq := NewEOQ()
	ctx := context.Background()
	base := eoq.BaseCase()

	q, err := eoq.Evaluate(ctx, base)
	require.NoError(t, err)
	grad, err := eoq.Gradient(ctx, base)
	require.NoError(t, err)

	m, _ := base.Value(KeyMovement)
	c, _ := base.Value(KeyUnitCost)
	s, _ := base.Value(KeySetup)

	assert.InEpsilon(t, q/(2*m), grad[KeyMovement], 1e-12)
	assert.InEpsilon(t, q/(2*s), grad[KeySetup], 1e-12)
	assert.InEpsilon(t, -q/(2*c), grad[KeyUnitCost], 1e-12)
}
