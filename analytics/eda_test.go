package analytics

import (
	"math"
	"testing"

	"traffic-analytics-api/models"
)

func TestDayTypeShares(t *testing.T) {
	records := []models.Record{
		{DayType: models.DayTypeWeekday},
		{DayType: models.DayTypeWeekday},
		{DayType: models.DayTypeWeekend},
		{DayType: ""},
	}
	got := DayTypeShares(records)
	if len(got) != 3 {
		t.Fatalf("got %d shares, want 3: %+v", len(got), got)
	}
	bycat := map[string]models.DayTypeShare{}
	total := 0.0
	for _, s := range got {
		bycat[s.DayType] = s
		total += s.Share
	}
	if bycat[models.DayTypeWeekday].Count != 2 {
		t.Errorf("weekday count = %d, want 2", bycat[models.DayTypeWeekday].Count)
	}
	if bycat["Unknown"].Count != 1 {
		t.Errorf("unknown count = %d, want 1", bycat["Unknown"].Count)
	}
	if math.Abs(total-1.0) > 1e-12 {
		t.Errorf("shares sum to %v, want 1", total)
	}
}

func TestDayTypeSharesEmpty(t *testing.T) {
	if got := DayTypeShares(nil); len(got) != 0 {
		t.Errorf("got %d shares, want 0", len(got))
	}
}

func TestFlowHistogram(t *testing.T) {
	records := []models.Record{
		{Flow: fp(0)}, {Flow: fp(1)}, {Flow: fp(2)}, {Flow: fp(3)},
		{Flow: fp(4)}, {Flow: fp(5)}, {Flow: fp(6)}, {Flow: fp(7)},
		{Flow: fp(8)}, {Flow: fp(10)},
		{Flow: nil},
	}
	got := FlowHistogram(records, 5)
	if got == nil {
		t.Fatal("histogram is nil")
	}
	if len(got.Edges) != 6 || len(got.Counts) != 5 {
		t.Fatalf("edges/counts = %d/%d, want 6/5", len(got.Edges), len(got.Counts))
	}
	if got.Total != 10 {
		t.Errorf("total = %d, want 10 (missing flow excluded)", got.Total)
	}
	sum := 0
	for _, n := range got.Counts {
		sum += n
	}
	if sum != got.Total {
		t.Errorf("bin counts sum to %d, want %d", sum, got.Total)
	}
	if got.Edges[0] != 0 || got.Edges[5] != 10 {
		t.Errorf("edges span [%v, %v], want [0, 10]", got.Edges[0], got.Edges[5])
	}
}

func TestFlowHistogramDegenerate(t *testing.T) {
	records := []models.Record{{Flow: fp(7)}, {Flow: fp(7)}, {Flow: fp(7)}}
	got := FlowHistogram(records, 50)
	if got == nil {
		t.Fatal("histogram is nil")
	}
	if len(got.Counts) != 1 || got.Counts[0] != 3 {
		t.Errorf("degenerate histogram = %+v, want single bin of 3", got)
	}
}

func TestFlowHistogramEmpty(t *testing.T) {
	if got := FlowHistogram(nil, 50); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestFlowBoxplot(t *testing.T) {
	records := []models.Record{
		{Flow: fp(1)}, {Flow: fp(2)}, {Flow: fp(3)}, {Flow: fp(4)},
		{Flow: fp(5)}, {Flow: fp(6)}, {Flow: fp(7)}, {Flow: fp(8)},
		{Flow: fp(100)}, // far outlier
	}
	got := FlowBoxplot(records)
	if got == nil {
		t.Fatal("boxplot is nil")
	}
	if got.Min != 1 || got.Max != 100 {
		t.Errorf("min/max = %v/%v, want 1/100", got.Min, got.Max)
	}
	if got.Q1 > got.Median || got.Median > got.Q3 {
		t.Errorf("quartiles out of order: %+v", got)
	}
	if len(got.Outliers) != 1 || got.Outliers[0] != 100 {
		t.Errorf("outliers = %v, want [100]", got.Outliers)
	}
	if got.WhiskerHigh == 100 {
		t.Error("whisker should stop before the outlier")
	}
	if got.Count != 9 {
		t.Errorf("count = %d, want 9", got.Count)
	}
}

func TestFlowBoxplotEmpty(t *testing.T) {
	if got := FlowBoxplot(nil); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}
