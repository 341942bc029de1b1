// Package kv implements the storage engine's bbolt-backed key-value
// store: the hot region (blocks and states descended from the
// finalized checkpoint, overwritable on reorg) and the finalized
// region (immutable, append-only), plus the checkpoint singletons the
// fork-choice store and block-import pipeline persist across restarts.
package kv

import (
	"os"
	"path"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.etcd.io/bbolt"

	"github.com/driftchain/beacon-node/beacon-chain/db/iface"
)

var _ iface.Database = (*Store)(nil)

const (
	databaseFileName = "beaconchain.db"

	// blockCacheSize is the cost budget of the in-memory block cache
	// ahead of the bbolt read path; every cached block costs 1.
	blockCacheSize = 1 << 21
	blockCacheKeys = 2000

	// ArchiveInterval is how many slots apart archive-mode finalized
	// states are retained at; intermediate states are regenerated by
	// replaying blocks from the nearest earlier archived point.
	ArchiveInterval = 2048
)

// StorageMode selects what happens to a finalized state once a later
// one has been archived: Archive keeps one every ArchiveInterval
// slots, Prune keeps only the latest.
type StorageMode int

const (
	// ArchiveMode retains one finalized state per ArchiveInterval slots.
	ArchiveMode StorageMode = iota
	// PruneMode retains only the single latest finalized state.
	PruneMode
)

// Store is a bbolt-backed implementation of iface.Database.
type Store struct {
	db           *bbolt.DB
	databasePath string
	mode         StorageMode
	blockCache   *ristretto.Cache
}

// NewKVStore opens (creating if necessary) a bbolt database at dirPath
// and ensures every bucket the schema defines exists.
func NewKVStore(dirPath string, mode StorageMode) (*Store, error) {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return nil, err
	}
	datafile := path.Join(dirPath, databaseFileName)
	boltDB, err := bbolt.Open(datafile, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		if err == bbolt.ErrTimeout {
			return nil, errors.New("cannot obtain database lock, database may be in use by another process")
		}
		return nil, err
	}

	blockCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: blockCacheKeys,
		MaxCost:     blockCacheSize,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	kv := &Store{
		db:           boltDB,
		databasePath: dirPath,
		mode:         mode,
		blockCache:   blockCache,
	}

	if err := kv.db.Update(func(tx *bbolt.Tx) error {
		return createBuckets(
			tx,
			blocksBucket,
			finalizedBlocksBucket,
			blockSlotIndexBucket,
			stateBucket,
			archivePointIndexBucket,
			checkpointBucket,
			chainMetadataBucket,
		)
	}); err != nil {
		return nil, err
	}

	if err := prometheus.Register(dbSizeCollector(kv)); err != nil {
		log.WithError(err).Debug("beacon db size collector already registered")
	}

	return kv, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ClearDB removes the previously stored database in the data directory.
func (s *Store) ClearDB() error {
	if _, err := os.Stat(s.databasePath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path.Join(s.databasePath, databaseFileName))
}

// DatabasePath at which this database writes files.
func (s *Store) DatabasePath() string {
	return s.databasePath
}

func createBuckets(tx *bbolt.Tx, buckets ...[]byte) error {
	for _, bucket := range buckets {
		if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
			return err
		}
	}
	return nil
}
