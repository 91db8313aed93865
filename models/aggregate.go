package models

// HourlyAggregate is one row of the per-hour summary table. FlowMean and
// OccMean are nil when no sample in the bucket carried that field.
type HourlyAggregate struct {
	Hour     int      `json:"hour"`
	FlowMean *float64 `json:"flow_mean"`
	OccMean  *float64 `json:"occ_mean"`
	Count    int      `json:"count"`
}

// HourMetrics are the single-hour dashboard metrics. Count 0 with nil means
// signals "no data", never a numeric zero.
type HourMetrics struct {
	Hour     int      `json:"hour"`
	FlowMean *float64 `json:"flow_mean"`
	OccMean  *float64 `json:"occ_mean"`
	Count    int      `json:"count"`
}

// DetectorRank is one row of the top-detector ranking at a selected hour.
type DetectorRank struct {
	DetectorID string   `json:"detector_id"`
	FlowMean   float64  `json:"flow_mean"`
	OccMean    *float64 `json:"occ_mean"`
	Count      int      `json:"count"`
}

// CIBand is the 95% confidence band around the mean occupancy of one hour.
type CIBand struct {
	Hour   int     `json:"hour"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	StdErr float64 `json:"std_err"`
	CILow  float64 `json:"ci_low"`
	CIHigh float64 `json:"ci_high"`
	Count  int     `json:"count"`
}
