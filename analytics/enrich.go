// Package analytics implements the data-preparation and aggregation pipeline
// behind the traffic dashboard: hour bucketing, day-type classification,
// filtering, grouped statistics, confidence bands and congestion status.
// Every function is pure; the loaded dataset is never mutated.
package analytics

import (
	"math"
	"time"

	"traffic-analytics-api/models"
)

// HourBucket maps seconds-of-day to an hour bucket 0-23. Anything that does
// not land in a valid hour (missing, negative, past midnight) is nil — not
// clamped, not wrapped — so malformed interval encodings drop out of
// hour-keyed aggregation instead of polluting bucket 0 or 23.
func HourBucket(intervalSec *float64) *int {
	if intervalSec == nil {
		return nil
	}
	v := *intervalSec
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	h := int(math.Floor(v / 3600))
	if h < 0 || h > 23 {
		return nil
	}
	return &h
}

// DayType classifies a calendar date as Weekday or Weekend. An unparsed date
// yields "" and the record is excluded from day-type keyed work.
func DayType(day *time.Time) string {
	if day == nil {
		return ""
	}
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return models.DayTypeWeekend
	default:
		return models.DayTypeWeekday
	}
}
