package kv

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.etcd.io/bbolt"
)

// dbSizeCollector reports the bbolt file size on each Prometheus scrape,
// read directly off an open transaction since prombolt only instruments
// the older boltdb/bolt fork, not bbolt.
func dbSizeCollector(s *Store) prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "beacondb_size_bytes",
		Help: "Size in bytes of the beacon chain database file.",
	}, func() float64 {
		var size int64
		_ = s.db.View(func(tx *bbolt.Tx) error {
			size = tx.Size()
			return nil
		})
		return float64(size)
	})
}
