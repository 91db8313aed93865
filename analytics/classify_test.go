package analytics

import (
	"testing"

	"traffic-analytics-api/models"
)

func TestClassifyQuantileBoundaries(t *testing.T) {
	th := &models.Thresholds{Q1: 50, Q2: 100, Q3: 150}
	tests := []struct {
		flow float64
		want string
	}{
		{0, models.StatusLight},
		{50, models.StatusLight}, // inclusive upper bound
		{50.01, models.StatusModerate},
		{100, models.StatusModerate},
		{101, models.StatusHeavy},
		{150, models.StatusHeavy},
		{151, models.StatusSevere},
	}
	for _, tt := range tests {
		if got := ClassifyQuantile(fp(tt.flow), th); got != tt.want {
			t.Errorf("ClassifyQuantile(%v) = %q, want %q", tt.flow, got, tt.want)
		}
	}
}

func TestClassifyQuantileUnavailable(t *testing.T) {
	th := &models.Thresholds{Q1: 1, Q2: 2, Q3: 3}
	if got := ClassifyQuantile(nil, th); got != models.StatusUnavailable {
		t.Errorf("missing flow: got %q, want %q", got, models.StatusUnavailable)
	}
	if got := ClassifyQuantile(fp(1), nil); got != models.StatusUnavailable {
		t.Errorf("undefined thresholds: got %q, want %q", got, models.StatusUnavailable)
	}
}

func TestQuantileThresholdsUndefinedOnEmpty(t *testing.T) {
	if th := QuantileThresholds(nil, SensitivityMedium); th != nil {
		t.Errorf("thresholds = %+v, want nil for empty input", th)
	}
	noFlow := []models.Record{{Hour: ip(1), Flow: nil}}
	if th := QuantileThresholds(noFlow, SensitivityMedium); th != nil {
		t.Errorf("thresholds = %+v, want nil when no flow samples", th)
	}
}

func TestQuantileThresholdsMonotonic(t *testing.T) {
	records := []models.Record{
		{Flow: fp(3)}, {Flow: fp(14)}, {Flow: fp(1)}, {Flow: fp(59)},
		{Flow: fp(26)}, {Flow: fp(5)}, {Flow: fp(35)}, {Flow: fp(89)},
		{Flow: fp(79)}, {Flow: fp(32)},
	}
	for _, sens := range []string{SensitivityLow, SensitivityMedium, SensitivityHigh} {
		th := QuantileThresholds(records, sens)
		if th == nil {
			t.Fatalf("thresholds undefined for %s", sens)
		}
		if !(th.Q1 <= th.Q2 && th.Q2 <= th.Q3) {
			t.Errorf("%s: thresholds not monotonic: %+v", sens, th)
		}
	}
}

func TestQuantileThresholdsSensitivityShifts(t *testing.T) {
	var records []models.Record
	for i := 1; i <= 100; i++ {
		records = append(records, models.Record{Flow: fp(float64(i))})
	}
	low := QuantileThresholds(records, SensitivityLow)
	high := QuantileThresholds(records, SensitivityHigh)
	// Higher sensitivity cuts lower in the distribution, so the same flow
	// value classifies as heavier traffic.
	if !(high.Q1 < low.Q1 && high.Q2 < low.Q2 && high.Q3 < low.Q3) {
		t.Errorf("high-sensitivity thresholds %+v should sit below low-sensitivity %+v", high, low)
	}
}

func TestClassifyQuantilePartition(t *testing.T) {
	records := []models.Record{
		{Flow: fp(10)}, {Flow: fp(20)}, {Flow: fp(30)}, {Flow: fp(40)},
		{Flow: fp(50)}, {Flow: fp(60)}, {Flow: fp(70)}, {Flow: fp(80)},
	}
	th := QuantileThresholds(records, SensitivityMedium)
	// Every value gets exactly one defined label.
	for v := 0.0; v <= 100; v += 2.5 {
		got := ClassifyQuantile(&v, th)
		switch got {
		case models.StatusLight, models.StatusModerate, models.StatusHeavy, models.StatusSevere:
		default:
			t.Fatalf("ClassifyQuantile(%v) = %q, not a defined label", v, got)
		}
	}
}

func TestClassifyFixed(t *testing.T) {
	tests := []struct {
		name        string
		flow, occ   *float64
		sensitivity string
		want        string
	}{
		{"quiet", fp(10), fp(0.01), SensitivityMedium, models.StatusLight},
		{"moderate by flow", fp(130), fp(0.01), SensitivityMedium, models.StatusModerate},
		{"moderate by occ", fp(10), fp(0.05), SensitivityMedium, models.StatusModerate},
		{"heavy by flow", fp(250), fp(0.01), SensitivityMedium, models.StatusHeavy},
		{"heavy by occ", fp(10), fp(0.09), SensitivityMedium, models.StatusHeavy},
		{"low sensitivity lowers bar", fp(190), fp(0.0), SensitivityLow, models.StatusHeavy},
		{"high sensitivity raises bar", fp(230), fp(0.0), SensitivityHigh, models.StatusModerate},
		{"no data", nil, nil, SensitivityMedium, models.StatusUnavailable},
		{"flow only", fp(250), nil, SensitivityMedium, models.StatusHeavy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFixed(tt.flow, tt.occ, tt.sensitivity); got != tt.want {
				t.Errorf("ClassifyFixed() = %q, want %q", got, tt.want)
			}
		})
	}
}
