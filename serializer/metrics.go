package serializer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mStatements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rdfsink_serializer_statements_total",
		Help: "Number of statements written, by output format.",
	}, []string{"format"})
	mMalformed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfsink_serializer_malformed_total",
		Help: "Number of serialization passes aborted by a malformed triple.",
	})
	mBlankNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rdfsink_serializer_blank_nodes",
		Help:    "Number of distinct blank nodes resolved in one pass.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
	mSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "rdfsink_serializer_seconds",
		Help: "Time to serialize one stream.",
	}, []string{"format"})
)
