package p2p

import (
	"time"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// Config for the p2p service. These parameters are set from application level flags
// to initialize the p2p service.
type Config struct {
	NoDiscovery           bool
	StaticPeers           []string
	BootstrapNodeAddr     []string
	KademliaBootStrapAddr []string
	Discv5BootStrapAddr   []string
	RelayNodeAddr         string
	LocalIP               string
	HostAddress           string
	HostDNS               string
	PrivateKey            string
	DataDir               string
	TCPPort               uint
	UDPPort               uint
	MaxPeers              uint
	WhitelistCIDR         string
	EnableUPnP            bool
	EnableDiscv5          bool
	Encoding              string
	PubSub                string

	// GenesisTime and GenesisValidatorsRoot seed the fork-digest this
	// node advertises in its ENR and status handshake. The service
	// doesn't subscribe to wait for genesis: by the time p2p starts,
	// the chain service has already computed both from the genesis
	// state.
	GenesisTime           time.Time
	GenesisValidatorsRoot types.Root
}
