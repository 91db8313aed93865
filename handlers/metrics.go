package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traffic_analytics_queries_served_total",
		Help: "Total number of analytics queries answered.",
	})
	queriesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traffic_analytics_queries_rejected_total",
		Help: "Total number of analytics queries rejected for invalid parameters.",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traffic_analytics_cache_hits_total",
		Help: "Total number of analytics responses served from cache.",
	})
	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_analytics_query_duration_seconds",
		Help:    "Duration of a full analytics recomputation.",
		Buckets: []float64{0.001, 0.005, 0.025, 0.1, 0.5, 1.0, 2.5},
	})
)
