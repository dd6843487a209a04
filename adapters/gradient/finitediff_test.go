package gradient

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosens/adapters/model"
	"gosens/domain/core"
	"gosens/domain/scenario"
)

func TestFiniteDiff_MatchesAnalyticEOQGradient(t *testing.T) {
	eoq := model.NewEOQ()
	ctx := context.Background()
	base := eoq.BaseCase()

	analytic, err := eoq.Gradient(ctx, base)
	require.NoError(t, err)

	fd := NewFiniteDiff(eoq, 0)
	approx, err := fd.Gradient(ctx, base)
	require.NoError(t, err)

	for _, k := range base.Keys() {
		assert.InEpsilon(t, analytic[k], approx[k], 1e-5, "partial derivative wrt %s", k)
	}
}

func TestFiniteDiff_PropagatesEvaluationErrors(t *testing.T) {
	failing := model.NewFunc("failing", func(point scenario.Vector) (float64, error) {
		return 0, fmt.Errorf("domain error")
	})
	point, err := scenario.FromMap(map[core.ParameterKey]float64{"a": 1.0, "b": 2.0})
	require.NoError(t, err)

	fd := NewFiniteDiff(failing, 0)
	grad, err := fd.Gradient(context.Background(), point)
	assert.Nil(t, grad)
	require.Error(t, err)
	assert.True(t, core.IsModelEvaluationError(err))
}
