package p2p

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/pkg/errors"

	"github.com/driftchain/beacon-node/shared/iputils"
)

// buildOptions assembles the libp2p host options: listen address,
// identity, and optional UPnP port mapping.
func buildOptions(cfg *Config) ([]libp2p.Option, net.IP, crypto.PrivKey, error) {
	ipStr := cfg.LocalIP
	if ipStr == "" {
		var err error
		ipStr, err = iputils.ExternalIPv4()
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "could not get IPv4 address")
		}
	}
	listen, err := ma.NewMultiaddr(fmt.Sprintf("/ip4/%s/tcp/%d", ipStr, cfg.TCPPort))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to build p2p listen address")
	}
	privateKey, err := privKey(cfg.PrivateKey)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "could not create private key")
	}
	options := []libp2p.Option{
		libp2p.ListenAddrs(listen),
		privKeyOption(privateKey),
	}
	if cfg.EnableUPnP {
		options = append(options, libp2p.NATPortMap())
	}
	return options, net.ParseIP(ipStr), privateKey, nil
}

// privKey loads a secp256k1 identity key from a hex-encoded file, or
// generates a fresh one if no file is configured.
func privKey(prvKey string) (crypto.PrivKey, error) {
	if prvKey == "" {
		priv, _, err := crypto.GenerateSecp256k1Key(rand.Reader)
		if err != nil {
			return nil, err
		}
		return priv, nil
	}
	raw, err := os.ReadFile(prvKey)
	if err != nil {
		log.WithField("private key file", prvKey).Warn("Could not read private key, file is missing or unreadable")
		return nil, err
	}
	keyBytes, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		log.WithError(err).Error("Error decoding private key file")
		return nil, err
	}
	priv, err := crypto.UnmarshalSecp256k1PrivateKey(keyBytes)
	if err != nil {
		log.WithError(err).Error("Error unmarshaling private key from file")
		return nil, err
	}
	return priv, nil
}

// privKeyOption adds the node's identity to the libp2p host config.
func privKeyOption(privkey crypto.PrivKey) libp2p.Option {
	return func(cfg *libp2p.Config) error {
		id, err := peer.IDFromPrivateKey(privkey)
		if err != nil {
			return err
		}
		log.WithField("peer id", id.Pretty()).Info("Private key generated. Announcing peer id")
		return cfg.Apply(libp2p.Identity(privkey))
	}
}
