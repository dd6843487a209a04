package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosens/domain/core"
	"gosens/domain/effects"
)

func exampleHierarchy() *effects.Hierarchy {
	// Mirrors the EOQ worked example's structure with round numbers.
	return &effects.Hierarchy{
		Keys:       []core.ParameterKey{"m", "c", "s"},
		BaseValue:  1000,
		TotalDelta: 50,
		Effects: map[effects.Subset]float64{
			effects.Singleton(0): 40,
			effects.Singleton(1): -35,
			effects.Singleton(2): 41,
			effects.Singleton(0) | effects.Singleton(1):                        -2,
			effects.Singleton(0) | effects.Singleton(2):                        4,
			effects.Singleton(1) | effects.Singleton(2):                        -1,
			effects.Singleton(0) | effects.Singleton(1) | effects.Singleton(2): 3,
		},
		Evaluations: 8,
	}
}

func TestRankFirstOrder(t *testing.T) {
	rows := RankFirstOrder(exampleHierarchy())
	require.Len(t, rows, 3)

	assert.Equal(t, core.ParameterKey("s"), rows[0].Key)
	assert.Equal(t, core.ParameterKey("m"), rows[1].Key)
	assert.Equal(t, core.ParameterKey("c"), rows[2].Key)

	shareSum := 0.0
	for _, r := range rows {
		shareSum += r.Share
	}
	assert.InDelta(t, 1.0, shareSum, 1e-12)
}

func TestAggregate(t *testing.T) {
	agg, err := Aggregate(exampleHierarchy())
	require.NoError(t, err)

	assert.InDelta(t, 46.0, agg.FirstOrderSum, 1e-12, "40 - 35 + 41")
	assert.InDelta(t, 50.0, agg.TotalDelta, 1e-12)
	assert.InDelta(t, 4.0, agg.InteractionSum, 1e-12, "interaction reconciles the naive sum")
	assert.InDelta(t, 41.0, agg.MaxAbsEffect, 1e-12)
	assert.InDelta(t, 0.92, agg.FirstOrderOnly, 1e-12)
}

func TestRenderHierarchy(t *testing.T) {
	out := RenderHierarchy(exampleHierarchy(), 2)

	assert.Contains(t, out, "base value y0 = 1000.00")
	assert.Contains(t, out, "order 1:")
	assert.Contains(t, out, "order 3:")
	assert.Contains(t, out, "{m,s}")
	assert.Contains(t, out, "{m,c,s}")
}

func TestRenderTornado(t *testing.T) {
	rows := RankFirstOrder(exampleHierarchy())
	out := RenderTornado(rows, 2)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4, "header plus one row per parameter")
	assert.Contains(t, lines[1], "s")
	assert.Contains(t, lines[1], "41.00")
}

func TestRenderImportance(t *testing.T) {
	imp := &effects.Importance{
		Keys:       []core.ParameterKey{"m", "c"},
		BaseValue:  1000,
		Elasticity: map[core.ParameterKey]float64{"m": 0.5, "c": -0.5},
		DIM:        map[core.ParameterKey]float64{"m": 1.6666667, "c": -0.6666667},
	}
	out := RenderImportance(imp, 2)

	assert.Contains(t, out, "1.67", "DIM values render at fixed precision")
	assert.Contains(t, out, "-0.67")
}
