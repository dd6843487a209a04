package model

import (
	"context"

	"gosens/domain/scenario"
)

// Func adapts a plain function into a ports.Model.
type Func struct {
	name string
	fn   func(point scenario.Vector) (float64, error)
}

// NewFunc creates a named function model.
func NewFunc(name string, fn func(point scenario.Vector) (float64, error)) *Func {
	return &Func{name: name, fn: fn}
}

// Name returns the model name.
func (m *Func) Name() string {
	return m.name
}

// Evaluate calls the wrapped function.
func (m *Func) Evaluate(_ context.Context, point scenario.Vector) (float64, error) {
	return m.fn(point)
}
