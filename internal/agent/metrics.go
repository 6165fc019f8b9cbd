package agent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	routeDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pulsar",
		Subsystem: "agent",
		Name:      "route_decisions_total",
		Help:      "Routing decisions by route",
	}, []string{"route"})

	toolInvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pulsar",
		Subsystem: "agent",
		Name:      "tool_invocations_total",
		Help:      "Tool invocations by tool name",
	}, []string{"tool"})

	toolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pulsar",
		Subsystem: "agent",
		Name:      "tool_duration_seconds",
		Help:      "Tool invocation duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tool"})

	classifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pulsar",
		Subsystem: "agent",
		Name:      "classify_duration_seconds",
		Help:      "Instruction classification duration",
		Buckets:   prometheus.DefBuckets,
	})
)
