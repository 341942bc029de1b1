package voluntaryexits

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	numPendingVoluntaryExits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pending_voluntary_exits",
			Help: "Number of pending voluntary exits in the pool.",
		},
	)
	voluntaryExitReattempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voluntary_exit_reattempts",
			Help: "Count of voluntary exit insertions rejected by the precondition check.",
		},
	)
	numPendingVoluntaryExitFailedVerify = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pending_voluntary_exit_failed_verify",
			Help: "Count of pending voluntary exits evicted after failing re-verification.",
		},
	)
	numVoluntaryExitsIncluded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voluntary_exits_included_total",
			Help: "Count of voluntary exits marked included in a block.",
		},
	)
)
