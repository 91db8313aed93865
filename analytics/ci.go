package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"traffic-analytics-api/models"
)

// zCritical95 is the normal-approximation critical value for a 95% band.
const zCritical95 = 1.96

// OccupancyCI computes the per-hour 95% confidence band around mean
// occupancy. A single-sample bucket gets std 0, so its band collapses to the
// mean instead of propagating NaN. Buckets without samples are absent.
func OccupancyCI(records []models.Record) []models.CIBand {
	groups := map[int][]float64{}
	for _, r := range records {
		if r.Hour == nil || r.Occupancy == nil {
			continue
		}
		groups[*r.Hour] = append(groups[*r.Hour], *r.Occupancy)
	}

	bands := make([]models.CIBand, 0, len(groups))
	for hour, xs := range groups {
		mean := stat.Mean(xs, nil)
		std := 0.0
		if len(xs) > 1 {
			std = stat.StdDev(xs, nil)
		}
		se := std / math.Sqrt(float64(len(xs)))
		bands = append(bands, models.CIBand{
			Hour:   hour,
			Mean:   mean,
			Std:    std,
			StdErr: se,
			CILow:  mean - zCritical95*se,
			CIHigh: mean + zCritical95*se,
			Count:  len(xs),
		})
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i].Hour < bands[j].Hour })
	return bands
}
