package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"traffic-analytics-api/models"
)

// DayTypeShares counts records per day type, including an Unknown slice for
// rows whose date failed to parse, with each slice's share of the total.
func DayTypeShares(records []models.Record) []models.DayTypeShare {
	counts := map[string]int{}
	for _, r := range records {
		label := r.DayType
		if label == "" {
			label = "Unknown"
		}
		counts[label]++
	}

	out := make([]models.DayTypeShare, 0, len(counts))
	total := len(records)
	for label, n := range counts {
		share := 0.0
		if total > 0 {
			share = float64(n) / float64(total)
		}
		out = append(out, models.DayTypeShare{DayType: label, Count: n, Share: share})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayType < out[j].DayType })
	return out
}

// FlowHistogram bins the non-missing flow values into bins equal-width
// buckets. Returns nil when there is nothing to bin.
func FlowHistogram(records []models.Record, bins int) *models.Histogram {
	flows := flowValues(records)
	if len(flows) == 0 || bins < 1 {
		return nil
	}

	min, max := flows[0], flows[0]
	for _, v := range flows {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		// Degenerate distribution: one bin holding everything.
		return &models.Histogram{
			Edges:  []float64{min, max},
			Counts: []int{len(flows)},
			Total:  len(flows),
		}
	}

	width := (max - min) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[bins] = max

	counts := make([]int, bins)
	for _, v := range flows {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return &models.Histogram{Edges: edges, Counts: counts, Total: len(flows)}
}

// FlowBoxplot computes the five-number summary of the non-missing flow
// values with 1.5*IQR whiskers and the outliers beyond them. Returns nil on
// empty input.
func FlowBoxplot(records []models.Record) *models.BoxplotSummary {
	flows := flowValues(records)
	if len(flows) == 0 {
		return nil
	}
	sort.Float64s(flows)

	q1 := stat.Quantile(0.25, stat.Empirical, flows, nil)
	median := stat.Quantile(0.50, stat.Empirical, flows, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, flows, nil)
	iqr := q3 - q1
	fenceLow := q1 - 1.5*iqr
	fenceHigh := q3 + 1.5*iqr

	out := &models.BoxplotSummary{
		Min:         flows[0],
		Q1:          q1,
		Median:      median,
		Q3:          q3,
		Max:         flows[len(flows)-1],
		WhiskerLow:  flows[0],
		WhiskerHigh: flows[len(flows)-1],
		Count:       len(flows),
	}
	for _, v := range flows {
		if v < fenceLow || v > fenceHigh {
			out.Outliers = append(out.Outliers, v)
		}
	}
	// Whiskers end at the furthest datapoint still inside the fences.
	for _, v := range flows {
		if v >= fenceLow {
			out.WhiskerLow = v
			break
		}
	}
	for i := len(flows) - 1; i >= 0; i-- {
		if flows[i] <= fenceHigh {
			out.WhiskerHigh = flows[i]
			break
		}
	}
	return out
}
