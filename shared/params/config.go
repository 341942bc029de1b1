// Package params defines the consensus and network constants used
// throughout the beacon node. All tunable values live on BeaconChainConfig
// or NetworkConfig; nothing consensus-critical is a bare literal elsewhere
// in the tree.
package params

import "time"

// BeaconChainConfig contains constants that affect the Ethereum 2.0 Phase 0
// beacon chain. This is a single source of truth; components read it
// through BeaconConfig(), never by constructing their own copy.
type BeaconChainConfig struct {
	// Time parameters.
	SecondsPerSlot    uint64 // SecondsPerSlot is how many seconds are in a single slot.
	SlotsPerEpoch     uint64 // SlotsPerEpoch is the number of slots in an epoch.
	MinAttestationInclusionDelay uint64 // MinAttestationInclusionDelay is the minimum number of slots an attestation must wait before inclusion.
	SlotsPerHistoricalRoot uint64 // SlotsPerHistoricalRoot defines the size of block/state root history rings.
	MinSeedLookahead  uint64 // MinSeedLookahead is epochs between a committee's seed and the epoch it serves.
	MaxSeedLookahead  uint64
	MinEpochsToInactivityPenalty uint64 // MinEpochsToInactivityPenalty is epochs of non-finality before the inactivity leak engages.
	MinValidatorWithdrawabilityDelay uint64
	ShardCommitteePeriod uint64
	MinEpochsForBlockRequests uint64 // MinEpochsForBlockRequests bounds how far back a peer must keep blocks available.
	EpochsPerEth1VotingPeriod uint64 // EpochsPerEth1VotingPeriod is how many epochs span one eth1 vote window.
	SlotsPerEth1VotingPeriod  uint64 // SlotsPerEth1VotingPeriod is EpochsPerEth1VotingPeriod in slots, the window process_eth1_data/process_final_updates use.

	// Registry parameters.
	MaxEffectiveBalance      uint64
	EffectiveBalanceIncrement uint64
	EjectionBalance          uint64
	MinDepositAmount         uint64
	MinGenesisActiveValidatorCount uint64
	MinGenesisTime           uint64

	// Reward/penalty parameters.
	BaseRewardFactor        uint64
	BaseRewardsPerEpoch     uint64 // BaseRewardsPerEpoch is the number of reward categories a validator can earn each epoch (source, target, head, proposer inclusion).
	WhistleBlowerRewardQuotient uint64
	ProposerRewardQuotient  uint64
	InactivityPenaltyQuotient uint64
	MinSlashingPenaltyQuotient uint64
	ProportionalSlashingMultiplier uint64

	// Registry churn parameters.
	ChurnLimitQuotient     uint64
	MinPerEpochChurnLimit  uint64

	// Max operations per block.
	MaxProposerSlashings uint64
	MaxAttesterSlashings uint64
	MaxAttestations      uint64
	MaxDeposits          uint64
	MaxVoluntaryExits    uint64

	// Max containers.
	EpochsPerHistoricalVector uint64
	EpochsPerSlashingsVector  uint64
	HistoricalRootsLimit      uint64
	ValidatorRegistryLimit    uint64
	DepositContractTreeDepth  uint64 // DepositContractTreeDepth is the height of the deposit contract's incremental Merkle tree.

	// Committee parameters.
	TargetCommitteeSize       uint64
	MaxCommitteesPerSlot      uint64
	ShuffleRoundCount         uint64
	MaxValidatorsPerCommittee uint64

	// Fork / domain parameters.
	GenesisForkVersion  []byte
	DomainBeaconProposer [4]byte
	DomainBeaconAttester [4]byte
	DomainRandao         [4]byte
	DomainDeposit        [4]byte
	DomainVoluntaryExit  [4]byte

	// Gwei values.
	GweiPerEth uint64

	ZeroHash [32]byte

	// Node-local resource policies.
	MaxPendingBlocks       int
	MaxPendingAttestations int
	MaxAttestationPoolSize int
	RPCRequestTimeout      time.Duration
	PingInterval           time.Duration
	SyncBatchTimeout       time.Duration
	MaxBlocksByRange       uint64
	MaxBlocksByRoot        uint64
	MaxPeersToSync         int
	MinSyncPeers           int
	BlockBatchSize         uint64

	// StateStorageMode chooses between archive (periodic full state
	// snapshots) and prune (only the latest finalized state retained).
	// Supplemented from original_source, see SPEC_FULL.md §C.
	StateStorageMode StateStorageMode

	// ArchivePeriod is the slot interval between archived states when
	// StateStorageMode is StateStorageModeArchive.
	ArchivePeriod uint64

	// SafetyDecay is the maximum tolerable loss, in percentage points, of
	// the FFG finality safety margin used by the weak subjectivity period
	// calculation. Supplemented from original_source, see SPEC_FULL.md §C.
	SafetyDecay uint64

	// DefaultBufferSize is the channel capacity services use when relaying
	// gossip messages between goroutines.
	DefaultBufferSize int
}

// StateStorageMode selects how the storage engine retains finalized states.
type StateStorageMode int

const (
	// StateStorageModePrune keeps only the latest finalized state.
	StateStorageModePrune StateStorageMode = iota
	// StateStorageModeArchive periodically persists full finalized states
	// for later regeneration of any intermediate state.
	StateStorageModeArchive
)

var beaconConfig = MainnetConfig()

// BeaconConfig returns the current active beacon chain config.
func BeaconConfig() *BeaconChainConfig {
	return beaconConfig
}

// OverrideBeaconConfig overrides the active config. Used by testnets and
// tests; production code should not call this after startup.
func OverrideBeaconConfig(cfg *BeaconChainConfig) {
	beaconConfig = cfg
}

// Copy returns a shallow copy of the config suitable for per-network
// overrides.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	copied := *b
	return &copied
}

// MainnetConfig returns the canonical Phase 0 mainnet configuration.
func MainnetConfig() *BeaconChainConfig {
	return &BeaconChainConfig{
		SecondsPerSlot:                    12,
		SlotsPerEpoch:                     32,
		MinAttestationInclusionDelay:      1,
		SlotsPerHistoricalRoot:            8192,
		MinSeedLookahead:                  1,
		MaxSeedLookahead:                  4,
		MinEpochsToInactivityPenalty:      4,
		MinValidatorWithdrawabilityDelay:  256,
		ShardCommitteePeriod:              256,
		MinEpochsForBlockRequests:         33024,
		EpochsPerEth1VotingPeriod:         64,
		SlotsPerEth1VotingPeriod:          64 * 32,
		MaxEffectiveBalance:               32000000000,
		EffectiveBalanceIncrement:         1000000000,
		EjectionBalance:                   16000000000,
		MinDepositAmount:                  1000000000,
		MinGenesisActiveValidatorCount:    16384,
		MinGenesisTime:                    1606824000,
		BaseRewardFactor:                  64,
		BaseRewardsPerEpoch:               4,
		WhistleBlowerRewardQuotient:       512,
		ProposerRewardQuotient:            8,
		InactivityPenaltyQuotient:         67108864,
		MinSlashingPenaltyQuotient:        128,
		ProportionalSlashingMultiplier:    3,
		ChurnLimitQuotient:                65536,
		MinPerEpochChurnLimit:             4,
		MaxProposerSlashings:              16,
		MaxAttesterSlashings:              2,
		MaxAttestations:                   128,
		MaxDeposits:                       16,
		MaxVoluntaryExits:                 16,
		EpochsPerHistoricalVector:         65536,
		EpochsPerSlashingsVector:          8192,
		HistoricalRootsLimit:              16777216,
		ValidatorRegistryLimit:            1099511627776,
		DepositContractTreeDepth:          32,
		TargetCommitteeSize:               128,
		MaxCommitteesPerSlot:              64,
		ShuffleRoundCount:                 90,
		MaxValidatorsPerCommittee:         2048,
		GenesisForkVersion:                []byte{0x00, 0x00, 0x00, 0x00},
		DomainBeaconProposer:              [4]byte{0x00, 0x00, 0x00, 0x00},
		DomainBeaconAttester:              [4]byte{0x01, 0x00, 0x00, 0x00},
		DomainRandao:                      [4]byte{0x02, 0x00, 0x00, 0x00},
		DomainDeposit:                     [4]byte{0x03, 0x00, 0x00, 0x00},
		DomainVoluntaryExit:               [4]byte{0x04, 0x00, 0x00, 0x00},
		GweiPerEth:                        1000000000,
		MaxPendingBlocks:                  32000,
		MaxPendingAttestations:            8192,
		MaxAttestationPoolSize:            8192 * 4,
		RPCRequestTimeout:                 10 * time.Second,
		PingInterval:                      30 * time.Second,
		SyncBatchTimeout:                  60 * time.Second,
		MaxBlocksByRange:                  1024,
		MaxBlocksByRoot:                   1024,
		MaxPeersToSync:                    15,
		MinSyncPeers:                      3,
		BlockBatchSize:                    64,
		StateStorageMode:                  StateStorageModePrune,
		ArchivePeriod:                     2048,
		SafetyDecay:                       10,
		DefaultBufferSize:                 100,
	}
}
