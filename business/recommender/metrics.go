package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	recommendRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommender_requests_total",
		Help: "Count of recommendation computations served by the engine.",
	})

	emptyResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommender_empty_results_total",
		Help: "Count of requests where the budget filter excluded every item.",
	})
)

func init() {
	prometheus.MustRegister(recommendRequestsTotal, emptyResultsTotal)
}
