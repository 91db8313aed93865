package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"traffic-analytics-api/analytics"
	"traffic-analytics-api/config"
	"traffic-analytics-api/dataset"
	"traffic-analytics-api/models"
	"traffic-analytics-api/services"
)

// StatusChannel carries congestion-status events for websocket subscribers.
const StatusChannel = "traffic:status"

const cacheTTL = 30 * time.Second

// TrafficHandler answers the analytics queries over the immutable in-memory
// dataset. Every request recomputes its view from the shared records; the
// redis cache only short-circuits identical filter combinations.
type TrafficHandler struct {
	data  *dataset.Dataset
	cache *services.CacheService
	cfg   config.AnalyticsConfig
}

func NewTrafficHandler(data *dataset.Dataset, cache *services.CacheService, cfg config.AnalyticsConfig) *TrafficHandler {
	return &TrafficHandler{data: data, cache: cache, cfg: cfg}
}

// SummaryResponse is the main dashboard payload: the 24h aggregate table,
// the selected-hour metrics and the congestion classification.
type SummaryResponse struct {
	Hourly       []models.HourlyAggregate `json:"hourly"`
	SelectedHour models.HourMetrics       `json:"selected_hour"`
	Status       string                   `json:"status"`
	Policy       string                   `json:"policy"`
	Sensitivity  string                   `json:"sensitivity"`
	Thresholds   *models.Thresholds       `json:"thresholds,omitempty"`
}

// StatusEvent is published to StatusChannel after each summary computation.
type StatusEvent struct {
	TS          time.Time `json:"ts"`
	Hour        int       `json:"hour"`
	Detector    string    `json:"detector"`
	DayType     string    `json:"day_type"`
	Sensitivity string    `json:"sensitivity"`
	Status      string    `json:"status"`
}

type RankingsResponse struct {
	Available bool                  `json:"available"`
	Reason    string                `json:"reason,omitempty"`
	Hour      int                   `json:"hour"`
	Data      []models.DetectorRank `json:"data"`
}

type CIResponse struct {
	Data []models.CIBand `json:"data"`
}

func (h *TrafficHandler) GetSummary(c *gin.Context) {
	q, err := ParseAnalyticsQuery(c)
	if err != nil {
		queriesRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cacheKey := q.CacheKey("summary")
	var cached SummaryResponse
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.Status != "" {
		cacheHits.Inc()
		c.JSON(http.StatusOK, cached)
		return
	}

	start := time.Now()
	filtered := q.Filter().Apply(h.data.Records)
	hourly := analytics.HourlySummary(filtered)
	metrics := analytics.MetricsForHour(hourly, q.Hour)

	resp := SummaryResponse{
		Hourly:       hourly,
		SelectedHour: metrics,
		Policy:       h.cfg.ClassifierPolicy,
		Sensitivity:  q.Sensitivity,
	}
	switch h.cfg.ClassifierPolicy {
	case analytics.PolicyFixed:
		resp.Status = analytics.ClassifyFixed(metrics.FlowMean, metrics.OccMean, q.Sensitivity)
	default:
		resp.Thresholds = analytics.QuantileThresholds(filtered, q.Sensitivity)
		resp.Status = analytics.ClassifyQuantile(metrics.FlowMean, resp.Thresholds)
	}
	queryDuration.Observe(time.Since(start).Seconds())
	queriesServed.Inc()

	go h.cache.Set(context.Background(), cacheKey, resp, cacheTTL)
	go h.cache.Publish(context.Background(), StatusChannel, StatusEvent{
		TS:          time.Now().UTC(),
		Hour:        q.Hour,
		Detector:    q.Detector,
		DayType:     q.DayType,
		Sensitivity: q.Sensitivity,
		Status:      resp.Status,
	})

	c.JSON(http.StatusOK, resp)
}

func (h *TrafficHandler) GetRankings(c *gin.Context) {
	q, err := ParseAnalyticsQuery(c)
	if err != nil {
		queriesRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// No detector column in this dataset: the ranking feature is disabled,
	// not an error.
	if !h.data.Schema.HasDetector {
		c.JSON(http.StatusOK, RankingsResponse{
			Available: false,
			Reason:    "dataset has no detector column",
			Hour:      q.Hour,
			Data:      []models.DetectorRank{},
		})
		return
	}

	cacheKey := q.CacheKey("rankings")
	var cached RankingsResponse
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.Available {
		cacheHits.Inc()
		c.JSON(http.StatusOK, cached)
		return
	}

	start := time.Now()
	filtered := q.Filter().Apply(h.data.Records)
	ranks := analytics.TopDetectors(filtered, q.Hour, h.cfg.TopDetectors)
	queryDuration.Observe(time.Since(start).Seconds())
	queriesServed.Inc()

	resp := RankingsResponse{Available: true, Hour: q.Hour, Data: ranks}
	go h.cache.Set(context.Background(), cacheKey, resp, cacheTTL)

	c.JSON(http.StatusOK, resp)
}

func (h *TrafficHandler) GetCI(c *gin.Context) {
	q, err := ParseAnalyticsQuery(c)
	if err != nil {
		queriesRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cacheKey := q.CacheKey("ci")
	var cached CIResponse
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.Data != nil {
		cacheHits.Inc()
		c.JSON(http.StatusOK, cached)
		return
	}

	start := time.Now()
	filtered := q.Filter().Apply(h.data.Records)
	bands := analytics.OccupancyCI(filtered)
	queryDuration.Observe(time.Since(start).Seconds())
	queriesServed.Inc()

	resp := CIResponse{Data: bands}
	go h.cache.Set(context.Background(), cacheKey, resp, cacheTTL)

	c.JSON(http.StatusOK, resp)
}

func (h *TrafficHandler) GetDetectors(c *gin.Context) {
	if !h.data.Schema.HasDetector {
		c.JSON(http.StatusOK, gin.H{"available": false, "data": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": true,
		"data":      analytics.Detectors(h.data.Records),
	})
}

func (h *TrafficHandler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"schema": h.data.Schema,
		"rows":   len(h.data.Records),
	})
}
