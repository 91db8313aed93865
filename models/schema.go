package models

// Schema describes which optional columns survived loading, checked once so
// handlers never probe column presence per request.
type Schema struct {
	Columns     []string `json:"columns"`
	Dropped     []string `json:"dropped_columns,omitempty"`
	HasDetector bool     `json:"has_detector"`
	HasCity     bool     `json:"has_city"`
	HasError    bool     `json:"has_error"`
	HasSpeed    bool     `json:"has_speed"`
}
