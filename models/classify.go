package models

// Congestion status labels. StatusUnavailable is returned whenever the
// filtered data cannot support a classification.
const (
	StatusLight       = "Light"
	StatusModerate    = "Moderate"
	StatusHeavy       = "Heavy"
	StatusSevere      = "Severe"
	StatusUnavailable = "Unavailable"
)

// Thresholds is the quantile triple cut from the currently filtered flow
// distribution. Derived fresh per query, never mutated.
type Thresholds struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}
