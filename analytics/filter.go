package analytics

import (
	"strings"
	"time"

	"traffic-analytics-api/models"
)

// DetectorAll matches every detector when used as Filter.DetectorID.
const DetectorAll = "all"

// Filter holds the user-selected predicates applied before aggregation.
// Zero-valued fields pass everything; set fields are combined with AND, so
// application order never changes the result.
type Filter struct {
	DetectorID string
	DayType    string
	Hour       *int
	From       *time.Time
	To         *time.Time
}

// Apply returns the records matching every set predicate. The input slice is
// never modified.
func (f Filter) Apply(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r models.Record) bool {
	if f.DetectorID != "" && !strings.EqualFold(f.DetectorID, DetectorAll) && r.DetectorID != f.DetectorID {
		return false
	}
	if f.DayType != "" && !strings.EqualFold(f.DayType, "all") && r.DayType != f.DayType {
		return false
	}
	if f.Hour != nil {
		if r.Hour == nil || *r.Hour != *f.Hour {
			return false
		}
	}
	if f.From != nil || f.To != nil {
		if r.Day == nil {
			return false
		}
		day := dateOnly(*r.Day)
		if f.From != nil && day.Before(dateOnly(*f.From)) {
			return false
		}
		if f.To != nil && day.After(dateOnly(*f.To)) {
			return false
		}
	}
	return true
}

// dateOnly strips time-of-day so range bounds compare calendar dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
