package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pulsar",
		Subsystem: "gateway",
		Name:      "chat_requests_total",
		Help:      "Chat requests by outcome",
	}, []string{"outcome"})

	chatDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pulsar",
		Subsystem: "gateway",
		Name:      "chat_duration_seconds",
		Help:      "End-to-end chat request duration",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})
)
