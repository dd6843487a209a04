package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gosens/adapters/model"
	"gosens/adapters/sensitivity/engine"
	"gosens/app"
	"gosens/domain/core"
	"gosens/domain/scenario"
	"gosens/internal"
	"gosens/internal/analysis/report"
	"gosens/internal/config"
)

func main() {
	// .env is optional; environment wins when both are present.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "gosens",
		Short: "Local sensitivity analysis over the Harris EOQ example",
		Long: `gosens decomposes the effect of a joint parameter perturbation into
singleton and interaction effects (the finite-difference effect hierarchy),
computes the linear-cost first/total-order summary, and ranks parameters by
differential importance.`,
	}

	rootCmd.AddCommand(
		newDecomposeCmd(),
		newSummarizeCmd(),
		newImportanceCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildScenario assembles the EOQ scenario from flags: the worked example's
// base case, optional per-parameter overrides, and a symmetric percent
// perturbation.
func buildScenario(params []string, perturb float64) (scenario.Scenario, *model.EOQ, error) {
	eoq := model.NewEOQ()
	base := eoq.BaseCase()

	for _, p := range params {
		key, valStr, ok := strings.Cut(p, "=")
		if !ok {
			return scenario.Scenario{}, nil, fmt.Errorf("invalid --param %q (use key=value)", p)
		}
		k, err := core.ParseParameterKey(key)
		if err != nil {
			return scenario.Scenario{}, nil, err
		}
		v, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return scenario.Scenario{}, nil, fmt.Errorf("invalid value for --param %q: %w", p, err)
		}
		base, err = base.With(k, v)
		if err != nil {
			return scenario.Scenario{}, nil, err
		}
	}

	scn, err := scenario.Percent(base, perturb)
	if err != nil {
		return scenario.Scenario{}, nil, err
	}
	return scn, eoq, nil
}

func loadEngine() (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	eng := engine.NewEngine(engine.Config{
		MaxParallel: cfg.Analysis.MaxParallel,
		Tolerance:   cfg.Analysis.Tolerance,
	})
	return eng, cfg, nil
}

func newDecomposeCmd() *cobra.Command {
	var perturb float64
	var params []string

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Compute the full effect hierarchy (2^n evaluations)",
		Long: `Decompose the joint perturbation into one interaction effect per
non-empty parameter subset. The effects telescope to the total delta.

Example: gosens decompose --perturb 0.10 --param m=1230`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scn, eoq, err := buildScenario(params, perturb)
			if err != nil {
				return err
			}
			eng, cfg, err := loadEngine()
			if err != nil {
				return err
			}
			h, err := eng.Decompose(cmd.Context(), scn, eoq)
			if err != nil {
				return err
			}
			fmt.Print(report.RenderHierarchy(h, cfg.Display.Precision))
			return nil
		},
	}

	cmd.Flags().Float64Var(&perturb, "perturb", 0.10, "symmetric perturbation fraction")
	cmd.Flags().StringArrayVar(&params, "param", nil, "base-case override key=value (repeatable)")
	return cmd
}

func newSummarizeCmd() *cobra.Command {
	var perturb float64
	var params []string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compute first-order, total-order, and interaction measures (2n+2 evaluations)",
		RunE: func(cmd *cobra.Command, args []string) error {
			scn, eoq, err := buildScenario(params, perturb)
			if err != nil {
				return err
			}
			eng, cfg, err := loadEngine()
			if err != nil {
				return err
			}
			sum, err := eng.Summarize(cmd.Context(), scn, eoq)
			if err != nil {
				return err
			}
			p := cfg.Display.Precision
			fmt.Printf("base value y0 = %.*f, total delta = %.*f (%d evaluations)\n",
				p, sum.BaseValue, p, sum.TotalDelta, sum.Evaluations)
			fmt.Println("parameter  first-order  total-order  interaction")
			for _, k := range sum.Keys {
				fmt.Printf("%-10s %-12.*f %-12.*f %.*f\n",
					k, p, sum.FirstOrder[k], p, sum.TotalOrder[k], p, sum.Interaction[k])
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&perturb, "perturb", 0.10, "symmetric perturbation fraction")
	cmd.Flags().StringArrayVar(&params, "param", nil, "base-case override key=value (repeatable)")
	return cmd
}

func newImportanceCmd() *cobra.Command {
	var perturb float64
	var params []string

	cmd := &cobra.Command{
		Use:   "importance",
		Short: "Compute elasticities and the differential importance measure",
		RunE: func(cmd *cobra.Command, args []string) error {
			scn, eoq, err := buildScenario(params, perturb)
			if err != nil {
				return err
			}
			eng, cfg, err := loadEngine()
			if err != nil {
				return err
			}
			imp, err := eng.Importance(cmd.Context(), scn, eoq, eoq)
			if err != nil {
				return err
			}
			fmt.Print(report.RenderImportance(imp, cfg.Display.Precision))
			return nil
		},
	}

	cmd.Flags().Float64Var(&perturb, "perturb", 0.10, "symmetric perturbation fraction")
	cmd.Flags().StringArrayVar(&params, "param", nil, "base-case override key=value (repeatable)")
	return cmd
}

func newReportCmd() *cobra.Command {
	var perturb float64
	var params []string
	var downside bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the complete study: decomposition, summary, importance, ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			scn, eoq, err := buildScenario(params, perturb)
			if err != nil {
				return err
			}
			eng, cfg, err := loadEngine()
			if err != nil {
				return err
			}
			logger := internal.NewDefaultLogger()
			svc := app.NewAnalysisService(eng, logger)

			result, err := svc.RunAnalysis(cmd.Context(), app.AnalysisRequest{
				Scenario:        scn,
				Model:           eoq,
				IncludeDownside: downside,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			p := cfg.Display.Precision
			fmt.Printf("analysis %s (model %s, %d ms)\n\n", result.AnalysisID, result.Model, result.RuntimeMs)
			fmt.Println("== effect hierarchy (upside) ==")
			fmt.Print(report.RenderHierarchy(result.Upside, p))
			if result.Downside != nil {
				fmt.Println("\n== effect hierarchy (downside) ==")
				fmt.Print(report.RenderHierarchy(result.Downside, p))
			}
			fmt.Println("\n== one-at-a-time ranking ==")
			fmt.Print(report.RenderTornado(result.Ranking, p))
			fmt.Println("\n== importance ==")
			fmt.Print(report.RenderImportance(result.Importance, p))
			fmt.Printf("\nfirst-order sum %.*f vs total delta %.*f (interaction %.*f)\n",
				p, result.Aggregates.FirstOrderSum, p, result.Aggregates.TotalDelta, p, result.Aggregates.InteractionSum)
			return nil
		},
	}

	cmd.Flags().Float64Var(&perturb, "perturb", 0.10, "symmetric perturbation fraction")
	cmd.Flags().StringArrayVar(&params, "param", nil, "base-case override key=value (repeatable)")
	cmd.Flags().BoolVar(&downside, "downside", false, "also decompose toward the worst case")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	return cmd
}
