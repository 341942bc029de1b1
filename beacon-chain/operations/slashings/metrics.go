package slashings

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	numPendingProposerSlashings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pending_proposer_slashings",
			Help: "Number of pending proposer slashings in the pool.",
		},
	)
	numPendingAttesterSlashings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pending_attester_slashings",
			Help: "Number of pending attester slashings in the pool.",
		},
	)
	proposerSlashingReattempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposer_slashing_reattempts",
			Help: "Count of proposer slashing insertions rejected by the precondition check.",
		},
	)
	attesterSlashingReattempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "attester_slashing_reattempts",
			Help: "Count of attester slashing insertions rejected by the precondition check.",
		},
	)
	numPendingProposerSlashingFailedVerify = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pending_proposer_slashing_failed_verify",
			Help: "Count of pending proposer slashings evicted after failing re-verification.",
		},
	)
	numPendingAttesterSlashingFailedVerify = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pending_attester_slashing_failed_verify",
			Help: "Count of pending attester slashings evicted after failing re-verification.",
		},
	)
	numProposerSlashingsIncluded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposer_slashings_included_total",
			Help: "Count of proposer slashings marked included in a block.",
		},
	)
	numAttesterSlashingsIncluded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "attester_slashings_included_total",
			Help: "Count of attester slashings marked included in a block.",
		},
	)
)
