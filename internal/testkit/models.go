package testkit

import (
	"context"
	"fmt"
	"sync/atomic"

	"gosens/domain/core"
	"gosens/domain/scenario"
	"gosens/ports"
)

// CountingModel wraps a model and counts evaluations. Safe for concurrent
// use, so it can verify call budgets under parallel decomposition too.
type CountingModel struct {
	inner ports.Model
	calls atomic.Int64
}

// NewCountingModel wraps a model with an evaluation counter.
func NewCountingModel(inner ports.Model) *CountingModel {
	return &CountingModel{inner: inner}
}

func (m *CountingModel) Name() string {
	return m.inner.Name() + "-counted"
}

func (m *CountingModel) Evaluate(ctx context.Context, point scenario.Vector) (float64, error) {
	m.calls.Add(1)
	return m.inner.Evaluate(ctx, point)
}

// Calls returns the number of evaluations so far.
func (m *CountingModel) Calls() int {
	return int(m.calls.Load())
}

// Reset clears the counter.
func (m *CountingModel) Reset() {
	m.calls.Store(0)
}

// AdditiveModel is separable, f(x) = sum of coeff_k * x_k. Every
// interaction effect of such a model is exactly zero, which makes it the
// canonical fixture for interaction-free assertions.
type AdditiveModel struct {
	Coeffs map[core.ParameterKey]float64
}

// NewAdditiveModel creates a separable linear model.
func NewAdditiveModel(coeffs map[core.ParameterKey]float64) *AdditiveModel {
	return &AdditiveModel{Coeffs: coeffs}
}

func (m *AdditiveModel) Name() string {
	return "additive"
}

func (m *AdditiveModel) Evaluate(_ context.Context, point scenario.Vector) (float64, error) {
	total := 0.0
	for _, k := range point.Keys() {
		v, _ := point.Value(k)
		total += m.Coeffs[k] * v
	}
	return total, nil
}

// PoisonedModel fails whenever the given parameter carries its poisoned
// value, simulating a domain error at one mixed point of the lattice.
type PoisonedModel struct {
	inner ports.Model
	key   core.ParameterKey
	value float64
}

// NewPoisonedModel wraps a model with a failing input region.
func NewPoisonedModel(inner ports.Model, key core.ParameterKey, value float64) *PoisonedModel {
	return &PoisonedModel{inner: inner, key: key, value: value}
}

func (m *PoisonedModel) Name() string {
	return m.inner.Name() + "-poisoned"
}

func (m *PoisonedModel) Evaluate(ctx context.Context, point scenario.Vector) (float64, error) {
	if v, ok := point.Value(m.key); ok && v == m.value {
		return 0, fmt.Errorf("domain error at %s=%g", m.key, m.value)
	}
	return m.inner.Evaluate(ctx, point)
}
