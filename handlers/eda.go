package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"traffic-analytics-api/analytics"
	"traffic-analytics-api/models"
)

// EDA endpoints compute the data behind the exploratory charts: day-type
// proportions, the flow histogram and the flow boxplot. The same filter
// surface applies so the charts follow the dashboard selection.

func (h *TrafficHandler) GetDayTypes(c *gin.Context) {
	q, err := ParseAnalyticsQuery(c)
	if err != nil {
		queriesRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	filtered := q.Filter().Apply(h.data.Records)
	shares := analytics.DayTypeShares(filtered)
	queryDuration.Observe(time.Since(start).Seconds())
	queriesServed.Inc()

	c.JSON(http.StatusOK, gin.H{"data": shares})
}

func (h *TrafficHandler) GetHistogram(c *gin.Context) {
	q, err := ParseAnalyticsQuery(c)
	if err != nil {
		queriesRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	filtered := q.Filter().Apply(h.data.Records)
	hist := analytics.FlowHistogram(filtered, h.cfg.HistogramBins)
	queryDuration.Observe(time.Since(start).Seconds())
	queriesServed.Inc()

	if hist == nil {
		c.JSON(http.StatusOK, gin.H{"data": (*models.Histogram)(nil)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": hist})
}

func (h *TrafficHandler) GetBoxplot(c *gin.Context) {
	q, err := ParseAnalyticsQuery(c)
	if err != nil {
		queriesRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	filtered := q.Filter().Apply(h.data.Records)
	box := analytics.FlowBoxplot(filtered)
	queryDuration.Observe(time.Since(start).Seconds())
	queriesServed.Inc()

	c.JSON(http.StatusOK, gin.H{"data": box})
}
