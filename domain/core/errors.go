package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyVector     = fmt.Errorf("%w: parameter vector is empty", ErrInvalidInput)
	ErrKeySetMismatch  = fmt.Errorf("%w: base and perturbed key sets differ", ErrInvalidInput)
	ErrTooManyFactors  = fmt.Errorf("%w: too many parameters for subset decomposition", ErrInvalidInput)
	ErrParameterAbsent = fmt.Errorf("%w: parameter not present in vector", ErrInvalidInput)
	ErrZeroBaseOutput  = fmt.Errorf("%w: elasticity undefined at zero base output", ErrInvalidInput)

	// Evaluation errors
	ErrModelEvaluation = errors.New("model evaluation failed")
	ErrNonFiniteOutput = fmt.Errorf("%w: model returned a non-finite value", ErrModelEvaluation)

	// Normalization errors
	ErrDegenerateNormalization = errors.New("degenerate normalization: elasticities sum to zero")
)

// Error constructors with context
func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

func NewModelEvaluationError(model string, point string, err error) error {
	return fmt.Errorf("%w: model %s at %s: %v", ErrModelEvaluation, model, point, err)
}

func NewParameterAbsentError(key ParameterKey) error {
	return fmt.Errorf("%w: %s", ErrParameterAbsent, key)
}

// Error checking helpers
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsModelEvaluationError(err error) bool {
	return errors.Is(err, ErrModelEvaluation)
}

func IsDegenerateNormalizationError(err error) bool {
	return errors.Is(err, ErrDegenerateNormalization)
}
