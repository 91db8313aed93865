package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"traffic-analytics-api/models"
)

// HourlySummary groups records by hour bucket and computes mean flow, mean
// occupancy and the flow sample count per bucket. Hours with no flow samples
// do not appear; there is no zero-filling. Rows are sorted ascending by hour.
func HourlySummary(records []models.Record) []models.HourlyAggregate {
	flows := map[int][]float64{}
	occs := map[int][]float64{}
	for _, r := range records {
		if r.Hour == nil {
			continue
		}
		if r.Flow != nil {
			flows[*r.Hour] = append(flows[*r.Hour], *r.Flow)
		}
		if r.Occupancy != nil {
			occs[*r.Hour] = append(occs[*r.Hour], *r.Occupancy)
		}
	}

	out := make([]models.HourlyAggregate, 0, len(flows))
	for hour, fs := range flows {
		agg := models.HourlyAggregate{Hour: hour, Count: len(fs)}
		mean := stat.Mean(fs, nil)
		agg.FlowMean = &mean
		if os := occs[hour]; len(os) > 0 {
			om := stat.Mean(os, nil)
			agg.OccMean = &om
		}
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// MetricsForHour extracts the single-hour dashboard metrics from an hourly
// summary. A missing bucket yields count 0 with nil means — "no data", not
// numeric zero.
func MetricsForHour(summary []models.HourlyAggregate, hour int) models.HourMetrics {
	for _, row := range summary {
		if row.Hour == hour {
			return models.HourMetrics{Hour: hour, FlowMean: row.FlowMean, OccMean: row.OccMean, Count: row.Count}
		}
	}
	return models.HourMetrics{Hour: hour}
}

// TopDetectors ranks detectors by mean flow within the selected hour,
// descending, truncated to limit. Ties break on detector id so the ranking
// is deterministic.
func TopDetectors(records []models.Record, hour, limit int) []models.DetectorRank {
	flows := map[string][]float64{}
	occs := map[string][]float64{}
	for _, r := range records {
		if r.Hour == nil || *r.Hour != hour || r.DetectorID == "" || r.Flow == nil {
			continue
		}
		flows[r.DetectorID] = append(flows[r.DetectorID], *r.Flow)
		if r.Occupancy != nil {
			occs[r.DetectorID] = append(occs[r.DetectorID], *r.Occupancy)
		}
	}

	ranks := make([]models.DetectorRank, 0, len(flows))
	for id, fs := range flows {
		rank := models.DetectorRank{DetectorID: id, FlowMean: stat.Mean(fs, nil), Count: len(fs)}
		if os := occs[id]; len(os) > 0 {
			om := stat.Mean(os, nil)
			rank.OccMean = &om
		}
		ranks = append(ranks, rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].FlowMean != ranks[j].FlowMean {
			return ranks[i].FlowMean > ranks[j].FlowMean
		}
		return ranks[i].DetectorID < ranks[j].DetectorID
	})
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// Detectors returns the sorted distinct detector ids present in the records.
func Detectors(records []models.Record) []string {
	seen := map[string]struct{}{}
	for _, r := range records {
		if r.DetectorID != "" {
			seen[r.DetectorID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
