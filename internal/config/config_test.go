package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Analysis.MaxParallel)
	assert.Equal(t, 1e-9, cfg.Analysis.Tolerance)
	assert.Equal(t, 2, cfg.Display.Precision)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SENS_MAX_PARALLEL", "8")
	t.Setenv("SENS_TOLERANCE", "1e-6")
	t.Setenv("SENS_PRECISION", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Analysis.MaxParallel)
	assert.Equal(t, 1e-6, cfg.Analysis.Tolerance)
	assert.Equal(t, 4, cfg.Display.Precision)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SENS_MAX_PARALLEL", "zero"},
		{"SENS_MAX_PARALLEL", "0"},
		{"SENS_TOLERANCE", "-1"},
		{"SENS_PRECISION", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
