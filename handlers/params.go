package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"traffic-analytics-api/analytics"
	"traffic-analytics-api/models"
)

// DefaultHour mirrors the dashboard's initial slider position.
const DefaultHour = 12

// AnalyticsQuery is the validated control surface shared by the analytics
// endpoints: selected hour, detector, day type, sensitivity and an optional
// inclusive date range.
type AnalyticsQuery struct {
	Hour        int
	Detector    string
	DayType     string
	Sensitivity string
	From        *time.Time
	To          *time.Time
}

// ParseAnalyticsQuery reads and validates the shared query parameters.
// Unset parameters fall back to the dashboard defaults; invalid values are
// rejected rather than coerced.
func ParseAnalyticsQuery(c *gin.Context) (AnalyticsQuery, error) {
	q := AnalyticsQuery{
		Hour:        DefaultHour,
		Detector:    analytics.DetectorAll,
		DayType:     "All",
		Sensitivity: analytics.SensitivityMedium,
	}

	if hourStr := c.Query("hour"); hourStr != "" {
		h, err := strconv.Atoi(hourStr)
		if err != nil || h < 0 || h > 23 {
			return q, fmt.Errorf("hour must be an integer in [0,23], got %q", hourStr)
		}
		q.Hour = h
	}

	if det := c.Query("detector"); det != "" {
		q.Detector = det
	}

	if dt := c.Query("day_type"); dt != "" {
		switch strings.ToLower(dt) {
		case "all":
			q.DayType = "All"
		case strings.ToLower(models.DayTypeWeekday):
			q.DayType = models.DayTypeWeekday
		case strings.ToLower(models.DayTypeWeekend):
			q.DayType = models.DayTypeWeekend
		default:
			return q, fmt.Errorf("day_type must be Weekday, Weekend or All, got %q", dt)
		}
	}

	if sens := c.Query("sensitivity"); sens != "" {
		switch strings.ToLower(sens) {
		case strings.ToLower(analytics.SensitivityLow):
			q.Sensitivity = analytics.SensitivityLow
		case strings.ToLower(analytics.SensitivityMedium):
			q.Sensitivity = analytics.SensitivityMedium
		case strings.ToLower(analytics.SensitivityHigh):
			q.Sensitivity = analytics.SensitivityHigh
		default:
			return q, fmt.Errorf("sensitivity must be Low, Medium or High, got %q", sens)
		}
	}

	var err error
	if q.From, err = parseDateParam(c.Query("from")); err != nil {
		return q, err
	}
	if q.To, err = parseDateParam(c.Query("to")); err != nil {
		return q, err
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return q, fmt.Errorf("date range is inverted: to precedes from")
	}

	return q, nil
}

// Filter builds the record filter for the query. The hour predicate is left
// out: the hourly table and CI band cover all hours, and per-hour views
// narrow down afterwards.
func (q AnalyticsQuery) Filter() analytics.Filter {
	return analytics.Filter{
		DetectorID: q.Detector,
		DayType:    q.DayType,
		From:       q.From,
		To:         q.To,
	}
}

// CacheKey is stable across requests with identical parameters.
func (q AnalyticsQuery) CacheKey(view string) string {
	from, to := "", ""
	if q.From != nil {
		from = q.From.Format("2006-01-02")
	}
	if q.To != nil {
		to = q.To.Format("2006-01-02")
	}
	return fmt.Sprintf("traffic:%s:%d:%s:%s:%s:%s:%s",
		view, q.Hour, q.Detector, q.DayType, q.Sensitivity, from, to)
}

func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", s)
}
