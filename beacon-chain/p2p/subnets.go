package p2p

import (
	"github.com/prysmaticlabs/go-bitfield"
)

// trackedSubnets returns the attestation-subnet bitfield this node
// currently advertises in its metadata. It always returns an empty
// bitvector: no attestation subnet is selected or advertised.
func (s *Service) trackedSubnets() bitfield.Bitvector64 {
	return bitfield.NewBitvector64()
}

func (s *Service) hasPeerWithSubnet(topic string) bool {
	return len(s.pubsub.ListPeers(topic+s.Encoding().ProtocolSuffix())) >= 1
}
