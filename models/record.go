package models

import "time"

// Day-type labels derived from the calendar date of a record.
const (
	DayTypeWeekday = "Weekday"
	DayTypeWeekend = "Weekend"
)

// Record is one detector reading from the source table. Numeric and date
// fields that failed to parse are nil rather than zero, so downstream
// aggregation can exclude them instead of averaging garbage.
type Record struct {
	DetectorID  string     `json:"detector_id"`
	City        string     `json:"city,omitempty"`
	Day         *time.Time `json:"day"`
	DayType     string     `json:"day_type,omitempty"`
	IntervalSec *float64   `json:"interval_sec"`
	Hour        *int       `json:"hour"`
	Flow        *float64   `json:"flow"`
	Occupancy   *float64   `json:"occ"`
	ErrorRate   *float64   `json:"error,omitempty"`
	SpeedKMH    *float64   `json:"speed,omitempty"`
}
