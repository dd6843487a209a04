package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosens/domain/core"
)

func TestNewVector_Validation(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyVector)

	_, err = New(
		[]core.ParameterKey{"a", "a"},
		map[core.ParameterKey]float64{"a": 1},
	)
	assert.True(t, core.IsInvalidInputError(err), "duplicate key must be rejected")

	_, err = New(
		[]core.ParameterKey{"a", "b"},
		map[core.ParameterKey]float64{"a": 1},
	)
	assert.ErrorIs(t, err, core.ErrParameterAbsent)

	_, err = New(
		[]core.ParameterKey{"a"},
		map[core.ParameterKey]float64{"a": 1, "b": 2},
	)
	assert.True(t, core.IsInvalidInputError(err), "stray map key must be rejected")
}

func TestVector_OrderAndAccess(t *testing.T) {
	v, err := New(
		[]core.ParameterKey{"m", "c", "s"},
		map[core.ParameterKey]float64{"m": 1230, "c": 0.0135, "s": 2.15},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []core.ParameterKey{"m", "c", "s"}, v.Keys())
	assert.Equal(t, 1230.0, v.At(0))
	assert.Equal(t, core.ParameterKey("c"), v.KeyAt(1))
	assert.Equal(t, 2, v.IndexOf("s"))
	assert.Equal(t, -1, v.IndexOf("zz"))

	val, ok := v.Value("c")
	require.True(t, ok)
	assert.Equal(t, 0.0135, val)

	w, err := v.With("m", 1353)
	require.NoError(t, err)
	assert.Equal(t, 1353.0, w.At(0))
	assert.Equal(t, 1230.0, v.At(0), "With must not mutate the receiver")

	_, err = v.With("zz", 1)
	assert.ErrorIs(t, err, core.ErrParameterAbsent)
}

func TestVector_Mix(t *testing.T) {
	base := MustNew(
		[]core.ParameterKey{"a", "b", "c"},
		map[core.ParameterKey]float64{"a": 1, "b": 2, "c": 3},
	)
	target := MustNew(
		[]core.ParameterKey{"a", "b", "c"},
		map[core.ParameterKey]float64{"a": 10, "b": 20, "c": 30},
	)

	mixed := base.Mix(target, func(i int) bool { return i == 1 })
	assert.Equal(t, []float64{1, 20, 3}, mixed.Values())

	all := base.Mix(target, func(int) bool { return true })
	assert.Equal(t, target.Values(), all.Values())

	none := base.Mix(target, func(int) bool { return false })
	assert.Equal(t, base.Values(), none.Values())
}

func TestScenario_Percent(t *testing.T) {
	base := MustNew(
		[]core.ParameterKey{"m", "c"},
		map[core.ParameterKey]float64{"m": 100, "c": 2},
	)

	scn, err := Percent(base, 0.10)
	require.NoError(t, err)

	assert.InDelta(t, 110.0, scn.Upside.At(0), 1e-12)
	assert.InDelta(t, 2.2, scn.Upside.At(1), 1e-12)
	require.NotNil(t, scn.Downside)
	assert.InDelta(t, 90.0, scn.Downside.At(0), 1e-12)
	assert.InDelta(t, 1.8, scn.Downside.At(1), 1e-12)
}

func TestValidatePair(t *testing.T) {
	a := MustNew([]core.ParameterKey{"x", "y"}, map[core.ParameterKey]float64{"x": 1, "y": 2})
	b := MustNew([]core.ParameterKey{"x", "y"}, map[core.ParameterKey]float64{"x": 3, "y": 4})
	c := MustNew([]core.ParameterKey{"y", "x"}, map[core.ParameterKey]float64{"x": 3, "y": 4})
	d := MustNew([]core.ParameterKey{"x"}, map[core.ParameterKey]float64{"x": 3})

	assert.NoError(t, ValidatePair(a, b))
	assert.ErrorIs(t, ValidatePair(a, c), core.ErrKeySetMismatch, "key order is part of the contract")
	assert.ErrorIs(t, ValidatePair(a, d), core.ErrKeySetMismatch)
	assert.ErrorIs(t, ValidatePair(Vector{}, b), core.ErrEmptyVector)
}
