package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific identifier types
type (
	// AnalysisID identifies a single sensitivity-analysis run.
	AnalysisID ID
	// ParameterKey names one scalar input of a model.
	ParameterKey string
)

func (id AnalysisID) String() string { return ID(id).String() }

func (k ParameterKey) String() string { return string(k) }

// ParseParameterKey parses a string into ParameterKey
func ParseParameterKey(s string) (ParameterKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("parameter key cannot be empty")
	}
	return ParameterKey(s), nil
}
