package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"gosens/domain/core"
	"gosens/domain/effects"
)

// Row is one line of the ranked one-at-a-time table.
type Row struct {
	Key    core.ParameterKey `json:"key"`
	Effect float64           `json:"effect"`
	Share  float64           `json:"share"` // |effect| / sum of |first-order effects|
}

// Aggregates condenses a hierarchy into the headline numbers the notebook
// reports: the naive first-order sum, the authoritative total delta, and
// the interaction remainder that reconciles them.
type Aggregates struct {
	BaseValue      float64 `json:"base_value"`
	TotalDelta     float64 `json:"total_delta"`
	FirstOrderSum  float64 `json:"first_order_sum"`
	InteractionSum float64 `json:"interaction_sum"` // TotalDelta - FirstOrderSum
	MaxAbsEffect   float64 `json:"max_abs_effect"`
	FirstOrderOnly float64 `json:"first_order_share"` // share of TotalDelta explained first-order
}

// RankFirstOrder returns singleton effects ordered by absolute magnitude,
// largest first - the tornado ordering.
func RankFirstOrder(h *effects.Hierarchy) []Row {
	first := h.FirstOrder()
	absSum := 0.0
	for _, v := range first {
		absSum += math.Abs(v)
	}

	rows := make([]Row, 0, len(first))
	for k, v := range first {
		share := 0.0
		if absSum > 0 {
			share = math.Abs(v) / absSum
		}
		rows = append(rows, Row{Key: k, Effect: v, Share: share})
	}
	sort.Slice(rows, func(i, j int) bool {
		ai, aj := math.Abs(rows[i].Effect), math.Abs(rows[j].Effect)
		if ai != aj {
			return ai > aj
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// Aggregate computes the headline numbers for a hierarchy.
func Aggregate(h *effects.Hierarchy) (Aggregates, error) {
	first := h.FirstOrder()
	firstVals := make([]float64, 0, len(first))
	absVals := make([]float64, 0, len(first))
	for _, v := range first {
		firstVals = append(firstVals, v)
		absVals = append(absVals, math.Abs(v))
	}

	firstSum, err := stats.Sum(firstVals)
	if err != nil {
		return Aggregates{}, err
	}
	maxAbs, err := stats.Max(absVals)
	if err != nil {
		return Aggregates{}, err
	}

	agg := Aggregates{
		BaseValue:      h.BaseValue,
		TotalDelta:     h.TotalDelta,
		FirstOrderSum:  firstSum,
		InteractionSum: h.TotalDelta - firstSum,
		MaxAbsEffect:   maxAbs,
	}
	if h.TotalDelta != 0 {
		agg.FirstOrderOnly = firstSum / h.TotalDelta
	}
	return agg, nil
}

// RenderHierarchy renders the full effect hierarchy as a plain-text table,
// one block per interaction order.
func RenderHierarchy(h *effects.Hierarchy, precision int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "base value y0 = %s\n", format(h.BaseValue, precision))
	fmt.Fprintf(&b, "total delta   = %s over %d evaluations\n", format(h.TotalDelta, precision), h.Evaluations)

	n := h.Factors()
	for size := 1; size <= n; size++ {
		order := h.Order(size)
		subsets := make([]effects.Subset, 0, len(order))
		for s := range order {
			subsets = append(subsets, s)
		}
		sort.Slice(subsets, func(i, j int) bool { return subsets[i] < subsets[j] })

		fmt.Fprintf(&b, "order %d:\n", size)
		for _, s := range subsets {
			fmt.Fprintf(&b, "  %-12s %s\n", s.Label(h.Keys), format(order[s], precision))
		}
	}
	return b.String()
}

// RenderTornado renders the ranked first-order table.
func RenderTornado(rows []Row, precision int) string {
	var b strings.Builder
	b.WriteString("rank  parameter  effect        share\n")
	for i, r := range rows {
		fmt.Fprintf(&b, "%-5d %-10s %-13s %.1f%%\n", i+1, r.Key, format(r.Effect, precision), r.Share*100)
	}
	return b.String()
}

// RenderImportance renders elasticities and the rounded DIM vector.
func RenderImportance(imp *effects.Importance, precision int) string {
	var b strings.Builder
	b.WriteString("parameter  elasticity  DIM\n")
	for _, k := range imp.Keys {
		dim, _ := stats.Round(imp.DIM[k], precision)
		fmt.Fprintf(&b, "%-10s %-11s %g\n", k, format(imp.Elasticity[k], precision), dim)
	}
	return b.String()
}

func format(v float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, v)
}
