package sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pendingBlocksCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacon_sync_pending_blocks",
			Help: "Number of blocks currently queued waiting on a missing parent.",
		},
	)
	badResponsesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beacon_sync_bad_responses_total",
			Help: "Count of peer responses that failed validation or decoding.",
		},
	)
	goodbyesSentCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beacon_sync_goodbyes_sent_total",
			Help: "Count of goodbye messages this node has sent to peers.",
		},
	)
)
