package scenario

import (
	"gosens/domain/core"
)

// Scenario pairs a base case with a fully perturbed upside case and an
// optional symmetric downside case. Perturbation touches every parameter;
// component-wise mixes are produced per subset during decomposition.
type Scenario struct {
	Base     Vector
	Upside   Vector
	Downside *Vector
}

// NewScenario creates and validates a base/upside pair.
func NewScenario(base, upside Vector) (Scenario, error) {
	s := Scenario{Base: base, Upside: upside}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// NewScenarioWithDownside also carries a worst-case vector.
func NewScenarioWithDownside(base, upside, downside Vector) (Scenario, error) {
	s := Scenario{Base: base, Upside: upside, Downside: &downside}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Percent builds the notebook-style symmetric scenario: every parameter
// moved by +pct for the upside and -pct for the downside.
func Percent(base Vector, pct float64) (Scenario, error) {
	if base.Len() == 0 {
		return Scenario{}, core.ErrEmptyVector
	}
	up := base.Scale(1 + pct)
	down := base.Scale(1 - pct)
	return NewScenarioWithDownside(base, up, down)
}

// Validate enforces identical, non-empty key sets across all cases.
func (s Scenario) Validate() error {
	if err := ValidatePair(s.Base, s.Upside); err != nil {
		return err
	}
	if s.Downside != nil {
		return ValidatePair(s.Base, *s.Downside)
	}
	return nil
}

// ValidatePair checks two vectors share the same non-empty ordered key set.
func ValidatePair(base, perturbed Vector) error {
	if base.Len() == 0 || perturbed.Len() == 0 {
		return core.ErrEmptyVector
	}
	if base.Len() != perturbed.Len() {
		return core.ErrKeySetMismatch
	}
	for i, k := range base.keys {
		if perturbed.keys[i] != k {
			return core.ErrKeySetMismatch
		}
	}
	return nil
}
