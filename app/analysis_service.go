package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gosens/adapters/gradient"
	"gosens/adapters/sensitivity/engine"
	"gosens/domain/core"
	"gosens/domain/effects"
	"gosens/domain/scenario"
	"gosens/internal/analysis/report"
	"gosens/ports"
)

// AnalysisService orchestrates a complete local sensitivity study: upside
// decomposition, optional downside decomposition, linear summary,
// differentiation-based importance, and the ranked report.
type AnalysisService struct {
	engine *engine.Engine
	logger *slog.Logger
}

// AnalysisRequest defines the inputs for one study.
type AnalysisRequest struct {
	Scenario scenario.Scenario
	Model    ports.Model
	// Oracle supplies derivatives for the importance path. When nil, the
	// model's own gradient is used if it implements ports.GradientOracle,
	// otherwise a finite-difference oracle is constructed.
	Oracle ports.GradientOracle
	// IncludeDownside also decomposes toward the worst case when the
	// scenario carries one.
	IncludeDownside bool
}

// AnalysisResult contains the complete output of a study.
type AnalysisResult struct {
	AnalysisID core.AnalysisID     `json:"analysis_id"`
	Model      string              `json:"model"`
	Upside     *effects.Hierarchy  `json:"upside"`
	Downside   *effects.Hierarchy  `json:"downside,omitempty"`
	Summary    *effects.Summary    `json:"summary"`
	Importance *effects.Importance `json:"importance"`
	Ranking    []report.Row        `json:"ranking"`
	Aggregates report.Aggregates   `json:"aggregates"`
	RuntimeMs  int64               `json:"runtime_ms"`
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService(eng *engine.Engine, logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{engine: eng, logger: logger}
}

// RunAnalysis executes the full study. The first error aborts the run;
// there is no partial-result policy, since a missing evaluation corrupts
// every larger-subset effect that depends on it.
func (s *AnalysisService) RunAnalysis(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	startTime := time.Now()

	if req.Model == nil {
		return nil, core.NewInvalidInputError("model is required")
	}
	if err := req.Scenario.Validate(); err != nil {
		return nil, err
	}

	analysisID := core.AnalysisID(core.NewID())
	s.logger.Debug("starting analysis",
		"analysis_id", analysisID.String(),
		"model", req.Model.Name(),
		"factors", req.Scenario.Base.Len())

	upside, err := s.engine.Decompose(ctx, req.Scenario, req.Model)
	if err != nil {
		return nil, fmt.Errorf("upside decomposition failed: %w", err)
	}

	var downside *effects.Hierarchy
	if req.IncludeDownside && req.Scenario.Downside != nil {
		downside, err = s.engine.DecomposeToward(ctx, req.Scenario.Base, *req.Scenario.Downside, req.Model)
		if err != nil {
			return nil, fmt.Errorf("downside decomposition failed: %w", err)
		}
	}

	summary, err := s.engine.Summarize(ctx, req.Scenario, req.Model)
	if err != nil {
		return nil, fmt.Errorf("summary failed: %w", err)
	}

	oracle := req.Oracle
	if oracle == nil {
		if g, ok := req.Model.(ports.GradientOracle); ok {
			oracle = g
		} else {
			oracle = gradient.NewFiniteDiff(req.Model, 0)
		}
	}
	importance, err := s.engine.Importance(ctx, req.Scenario, req.Model, oracle)
	if err != nil {
		return nil, fmt.Errorf("importance failed: %w", err)
	}

	aggregates, err := report.Aggregate(upside)
	if err != nil {
		return nil, fmt.Errorf("aggregation failed: %w", err)
	}

	result := &AnalysisResult{
		AnalysisID: analysisID,
		Model:      req.Model.Name(),
		Upside:     upside,
		Downside:   downside,
		Summary:    summary,
		Importance: importance,
		Ranking:    report.RankFirstOrder(upside),
		Aggregates: aggregates,
		RuntimeMs:  time.Since(startTime).Milliseconds(),
	}

	s.logger.Debug("analysis complete",
		"analysis_id", analysisID.String(),
		"evaluations", upside.Evaluations+summary.Evaluations,
		"runtime_ms", result.RuntimeMs)
	return result, nil
}
