// Package metrics exposes the gateway's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MappingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "archemap_mapping_requests_total",
			Help: "Total mapping requests by outcome archetype",
		},
		[]string{"archetype"},
	)

	MappingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "archemap_mapping_failures_total",
			Help: "Mapping requests rejected at the input-contract boundary",
		},
	)

	MappingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "archemap_mapping_duration_seconds",
			Help:    "End-to-end mapping pipeline duration",
			Buckets: prometheus.DefBuckets,
		},
	)

	MappingConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "archemap_mapping_overall_confidence",
			Help:    "Distribution of overall mapping confidence",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	SkeletonEmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "archemap_skeleton_emissions_total",
			Help: "Skeletons emitted from mapping results",
		},
	)
)
