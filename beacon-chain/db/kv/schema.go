package kv

// Bucket names for the storage engine's canonical key spaces:
// block_by_root, block_by_slot (finalized only), state_by_block_root,
// checkpoint (singleton per type), and an archive-point index for
// state regeneration in archive mode.
var (
	blocksBucket            = []byte("blocks")           // hot + finalized, keyed by block root
	finalizedBlocksBucket   = []byte("finalized-blocks")  // promoted subset, also keyed by root
	blockSlotIndexBucket    = []byte("block-slot-index")  // finalized only: slot -> root
	stateBucket             = []byte("states")            // block root -> state
	archivePointIndexBucket = []byte("archive-points")    // slot -> block root, archive mode only
	checkpointBucket        = []byte("checkpoints")       // justified/best-justified/finalized singletons
	chainMetadataBucket     = []byte("chain-metadata")    // genesis block root, misc singletons
)

var (
	justifiedCheckpointKey     = []byte("justified")
	bestJustifiedCheckpointKey = []byte("best-justified")
	finalizedCheckpointKey     = []byte("finalized")
	genesisBlockRootKey        = []byte("genesis-block-root")
)
