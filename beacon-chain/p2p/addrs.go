package p2p

import (
	ma "github.com/multiformats/go-multiaddr"
	"github.com/pkg/errors"
)

// peersFromStringAddrs parses a list of string multiaddrs, skipping
// empty entries.
func peersFromStringAddrs(addrs []string) ([]ma.Multiaddr, error) {
	var allAddrs []ma.Multiaddr
	for _, addr := range addrs {
		if addr == "" {
			continue
		}
		parsed, err := ma.NewMultiaddr(addr)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse multiaddr %s", addr)
		}
		allAddrs = append(allAddrs, parsed)
	}
	return allAddrs, nil
}
