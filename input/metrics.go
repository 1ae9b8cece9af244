package input

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errTypeLabel  = "error_type"
	endpointLabel = "endpoint"
)

var (
	inputFetch = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "input_fetch",
		Help: "The number of inputs fetched from a remote endpoint.",
	}, []string{
		endpointLabel,
	})

	inputFetchError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "input_fetch_errors",
		Help: "The errors that occured while fetching an input.",
	}, []string{
		endpointLabel,
		errTypeLabel,
	})

	inputFetchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "input_fetch_latency",
		Help: "The time to fetch an input.",
	}, []string{
		endpointLabel,
	})
)

func instrumentFetch(endpoint string, fetch func() error) error {
	start := time.Now()
	defer func() {
		inputFetchLatency.With(prometheus.Labels{
			endpointLabel: endpoint,
		}).Observe(time.Since(start).Seconds())
	}()

	inputFetch.With(prometheus.Labels{
		endpointLabel: endpoint,
	}).Inc()

	err := fetch()
	if err != nil {
		inputFetchError.
			With(prometheus.Labels{
				endpointLabel: endpoint,
				errTypeLabel:  errors.Type(err),
			}).
			Inc()
	}
	return err
}
