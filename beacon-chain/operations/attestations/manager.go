package attestations

import (
	"errors"
	"sync"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/forkchoice"
)

// Manager tracks attestations the fork-choice store can't yet process:
// those destined for a slot still in the future, and those whose voted
// block hasn't been imported yet. An item is never stored in both queues;
// an invalid processing result discards the item without requeue.
type Manager struct {
	lock sync.Mutex

	store *forkchoice.Store

	// future is keyed by the earliest slot (data.slot + 1) the attestation
	// becomes eligible for fork-choice processing.
	future map[uint64][]*types.IndexedAttestation
	// pending is keyed by the beacon_block_root the attestation is
	// waiting on.
	pending map[types.Root][]*types.IndexedAttestation
}

// NewManager returns a Manager that delivers ready attestations to store.
func NewManager(store *forkchoice.Store) *Manager {
	return &Manager{
		store:   store,
		future:  make(map[uint64][]*types.IndexedAttestation),
		pending: make(map[types.Root][]*types.IndexedAttestation),
	}
}

// Add classifies att and either delivers it to the fork-choice store
// immediately, or queues it for later redelivery.
func (m *Manager) Add(currentSlot uint64, att *types.IndexedAttestation) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	earliestSlot := att.Data.Slot + 1
	if earliestSlot > currentSlot {
		m.future[earliestSlot] = append(m.future[earliestSlot], att)
		return nil
	}
	return m.deliver(att)
}

// deliver hands att straight to the store, queuing it as pending if its
// block hasn't arrived yet. The caller must hold m.lock.
func (m *Manager) deliver(att *types.IndexedAttestation) error {
	err := m.store.OnAttestation(att)
	if errors.Is(err, forkchoice.ErrUnknownBlock) {
		root := att.Data.BeaconBlockRoot
		m.pending[root] = append(m.pending[root], att)
		return nil
	}
	return err
}

// OnSlot releases every future attestation whose earliest eligible slot has
// arrived, delivering each to the store (or re-queuing it as pending).
func (m *Manager) OnSlot(slot uint64) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	for earliestSlot, atts := range m.future {
		if earliestSlot > slot {
			continue
		}
		for _, att := range atts {
			if err := m.deliver(att); err != nil {
				return err
			}
		}
		delete(m.future, earliestSlot)
	}
	return nil
}

// OnImportedBlock re-delivers every attestation that was waiting on root.
func (m *Manager) OnImportedBlock(root types.Root) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	atts := m.pending[root]
	delete(m.pending, root)
	for _, att := range atts {
		if err := m.store.OnAttestation(att); err != nil {
			return err
		}
	}
	return nil
}

// NumFuture returns the number of distinct future-slot buckets queued.
func (m *Manager) NumFuture() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.future)
}

// NumPending returns the number of distinct block roots with queued
// pending attestations.
func (m *Manager) NumPending() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.pending)
}
