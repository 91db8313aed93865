package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"traffic-analytics-api/models"
)

// Sensitivity levels for the congestion classifier.
const (
	SensitivityLow    = "Low"
	SensitivityMedium = "Medium"
	SensitivityHigh   = "High"
)

// Classifier policies. PolicyQuantile cuts thresholds at quantiles of the
// filtered flow distribution; PolicyFixed uses the absolute flow/occupancy
// thresholds of the original dashboard scaled by a sensitivity multiplier.
const (
	PolicyQuantile = "quantile"
	PolicyFixed    = "fixed"
)

// quantileTriples maps sensitivity to the quantile cut points. Higher
// sensitivity pushes the cuts down so the same traffic reads as heavier.
var quantileTriples = map[string][3]float64{
	SensitivityLow:    {0.35, 0.65, 0.85},
	SensitivityMedium: {0.25, 0.50, 0.75},
	SensitivityHigh:   {0.15, 0.35, 0.60},
}

// fixedMultipliers scale the absolute thresholds of the fixed policy.
var fixedMultipliers = map[string]float64{
	SensitivityLow:    0.85,
	SensitivityMedium: 1.00,
	SensitivityHigh:   1.15,
}

// QuantileThresholds derives the (q1,q2,q3) flow cut points for the given
// sensitivity from the filtered records. Returns nil when no flow samples
// exist — thresholds are undefined, not zero.
func QuantileThresholds(records []models.Record, sensitivity string) *models.Thresholds {
	flows := flowValues(records)
	if len(flows) == 0 {
		return nil
	}
	triple, ok := quantileTriples[sensitivity]
	if !ok {
		triple = quantileTriples[SensitivityMedium]
	}
	sort.Float64s(flows)
	return &models.Thresholds{
		Q1: stat.Quantile(triple[0], stat.Empirical, flows, nil),
		Q2: stat.Quantile(triple[1], stat.Empirical, flows, nil),
		Q3: stat.Quantile(triple[2], stat.Empirical, flows, nil),
	}
}

// ClassifyQuantile maps a flow value onto the four-level status scale.
// Boundaries are inclusive on the lower label: v == q1 is still Light.
func ClassifyQuantile(flow *float64, th *models.Thresholds) string {
	if th == nil || flow == nil {
		return models.StatusUnavailable
	}
	v := *flow
	switch {
	case v <= th.Q1:
		return models.StatusLight
	case v <= th.Q2:
		return models.StatusModerate
	case v <= th.Q3:
		return models.StatusHeavy
	default:
		return models.StatusSevere
	}
}

// Absolute cut points of the fixed policy, sized for the Basel dataset where
// occupancy runs 0..1 and flow peaks around 1300 vehicles per interval.
const (
	fixedOccHeavy     = 0.08
	fixedOccModerate  = 0.04
	fixedFlowHeavy    = 220.0
	fixedFlowModerate = 120.0
)

// ClassifyFixed is the three-level legacy scheme: mean flow and occupancy of
// the selected hour against absolute thresholds scaled by sensitivity.
func ClassifyFixed(flowMean, occMean *float64, sensitivity string) string {
	if flowMean == nil && occMean == nil {
		return models.StatusUnavailable
	}
	k, ok := fixedMultipliers[sensitivity]
	if !ok {
		k = fixedMultipliers[SensitivityMedium]
	}
	flow, occ := 0.0, 0.0
	if flowMean != nil {
		flow = *flowMean
	}
	if occMean != nil {
		occ = *occMean
	}
	switch {
	case occ >= fixedOccHeavy*k || flow >= fixedFlowHeavy*k:
		return models.StatusHeavy
	case occ >= fixedOccModerate*k || flow >= fixedFlowModerate*k:
		return models.StatusModerate
	default:
		return models.StatusLight
	}
}

func flowValues(records []models.Record) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Flow != nil {
			out = append(out, *r.Flow)
		}
	}
	return out
}
