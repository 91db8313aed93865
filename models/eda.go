package models

// DayTypeShare is one slice of the weekday/weekend proportion breakdown.
type DayTypeShare struct {
	DayType string  `json:"day_type"`
	Count   int     `json:"count"`
	Share   float64 `json:"share"`
}

// Histogram holds equal-width bins over the filtered flow distribution.
// Edges has one more entry than Counts.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
	Total  int       `json:"total"`
}

// BoxplotSummary is the five-number summary of the filtered flow values plus
// the points past the 1.5*IQR whiskers.
type BoxplotSummary struct {
	Min         float64   `json:"min"`
	Q1          float64   `json:"q1"`
	Median      float64   `json:"median"`
	Q3          float64   `json:"q3"`
	Max         float64   `json:"max"`
	WhiskerLow  float64   `json:"whisker_low"`
	WhiskerHigh float64   `json:"whisker_high"`
	Outliers    []float64 `json:"outliers"`
	Count       int       `json:"count"`
}
