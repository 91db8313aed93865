package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"traffic-analytics-api/analytics"
	"traffic-analytics-api/models"
)

func ginContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParseAnalyticsQueryDefaults(t *testing.T) {
	q, err := ParseAnalyticsQuery(ginContext(t, "/api/v1/traffic/summary"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Hour != DefaultHour {
		t.Errorf("Hour = %d, want %d", q.Hour, DefaultHour)
	}
	if q.Detector != analytics.DetectorAll {
		t.Errorf("Detector = %q, want all", q.Detector)
	}
	if q.DayType != "All" {
		t.Errorf("DayType = %q, want All", q.DayType)
	}
	if q.Sensitivity != analytics.SensitivityMedium {
		t.Errorf("Sensitivity = %q, want Medium", q.Sensitivity)
	}
	if q.From != nil || q.To != nil {
		t.Error("date range should default to unset")
	}
}

func TestParseAnalyticsQueryFull(t *testing.T) {
	q, err := ParseAnalyticsQuery(ginContext(t,
		"/x?hour=7&detector=d42&day_type=weekend&sensitivity=high&from=2024-07-01&to=2024-07-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Hour != 7 {
		t.Errorf("Hour = %d, want 7", q.Hour)
	}
	if q.Detector != "d42" {
		t.Errorf("Detector = %q", q.Detector)
	}
	if q.DayType != models.DayTypeWeekend {
		t.Errorf("DayType = %q, want Weekend (normalized)", q.DayType)
	}
	if q.Sensitivity != analytics.SensitivityHigh {
		t.Errorf("Sensitivity = %q, want High (normalized)", q.Sensitivity)
	}
	if q.From == nil || q.From.Format("2006-01-02") != "2024-07-01" {
		t.Errorf("From = %v", q.From)
	}
	if q.To == nil || q.To.Format("2006-01-02") != "2024-07-31" {
		t.Errorf("To = %v", q.To)
	}
}

func TestParseAnalyticsQueryInvalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"hour too high", "/x?hour=24"},
		{"hour negative", "/x?hour=-1"},
		{"hour non-numeric", "/x?hour=noon"},
		{"bad day type", "/x?day_type=holiday"},
		{"bad sensitivity", "/x?sensitivity=extreme"},
		{"bad date", "/x?from=yesterday"},
		{"inverted range", "/x?from=2024-07-31&to=2024-07-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAnalyticsQuery(ginContext(t, tt.url)); err == nil {
				t.Errorf("expected error for %s", tt.url)
			}
		})
	}
}

func TestCacheKeyStable(t *testing.T) {
	q1, _ := ParseAnalyticsQuery(ginContext(t, "/x?hour=8&detector=d1"))
	q2, _ := ParseAnalyticsQuery(ginContext(t, "/x?hour=8&detector=d1"))
	if q1.CacheKey("summary") != q2.CacheKey("summary") {
		t.Error("identical queries should produce identical cache keys")
	}
	if q1.CacheKey("summary") == q1.CacheKey("ci") {
		t.Error("different views must not share cache keys")
	}
	q3, _ := ParseAnalyticsQuery(ginContext(t, "/x?hour=9&detector=d1"))
	if q1.CacheKey("summary") == q3.CacheKey("summary") {
		t.Error("different hours must not share cache keys")
	}
}
