package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Display  DisplayConfig
}

// AnalysisConfig holds engine settings
type AnalysisConfig struct {
	MaxParallel int     // concurrent model evaluations during decomposition
	Tolerance   float64 // relative tolerance for the telescoping self-check
}

// DisplayConfig holds report rendering settings
type DisplayConfig struct {
	Precision int // decimal places for rendered effects and DIM values
}

// Load builds configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Analysis: AnalysisConfig{
			MaxParallel: 1,
			Tolerance:   1e-9,
		},
		Display: DisplayConfig{
			Precision: 2,
		},
	}

	if v := os.Getenv("SENS_MAX_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SENS_MAX_PARALLEL %q", v)
		}
		cfg.Analysis.MaxParallel = n
	}
	if v := os.Getenv("SENS_TOLERANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid SENS_TOLERANCE %q", v)
		}
		cfg.Analysis.Tolerance = f
	}
	if v := os.Getenv("SENS_PRECISION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid SENS_PRECISION %q", v)
		}
		cfg.Display.Precision = n
	}

	return cfg, nil
}
