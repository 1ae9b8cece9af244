package nanobots

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errTypeLabel = "error_type"
	oracleLabel  = "oracle"
)

var (
	regionsSubdivided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nanobots_regions_subdivided",
		Help: "The number of regions split into children.",
	}, []string{
		oracleLabel,
	})

	regionsPruned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nanobots_regions_pruned",
		Help: "The number of child regions dropped under the coverage threshold.",
	}, []string{
		oracleLabel,
	})

	searchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nanobots_search_latency",
		Help:    "The time to converge a search.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{
		oracleLabel,
	})

	searchError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nanobots_search_errors",
		Help: "The errors that occured while searching.",
	}, []string{
		oracleLabel,
		errTypeLabel,
	})
)

func oracleName(o Oracle) string {
	switch o.(type) {
	case HeuristicOracle, *HeuristicOracle:
		return "heuristic"
	case ExactOracle, *ExactOracle:
		return "exact"
	default:
		return "custom"
	}
}

func instrumentSearchLatency(oracle string, start time.Time) {
	searchLatency.With(prometheus.Labels{
		oracleLabel: oracle,
	}).Observe(time.Since(start).Seconds())
}

func instrumentSearch(oracle string, stats Stats) {
	labels := prometheus.Labels{
		oracleLabel: oracle,
	}
	regionsSubdivided.With(labels).Add(float64(stats.Subdivided))
	regionsPruned.With(labels).Add(float64(stats.Pruned))
}

func instrumentSearchError(oracle string, err error) {
	searchError.
		With(prometheus.Labels{
			oracleLabel:  oracle,
			errTypeLabel: errors.Type(err),
		}).
		Inc()
}
