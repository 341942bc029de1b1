// Package iputils resolves the node's externally-routable IPv4 address,
// used to build the libp2p listen multiaddr when no address is configured.
package iputils

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// externalIPProvider is queried for this node's public-facing IPv4
// address. It returns the address as plain text, nothing else.
const externalIPProvider = "http://checkip.amazonaws.com"

// ExternalIPv4 fetches this host's external IPv4 address from
// externalIPProvider.
func ExternalIPv4() (string, error) {
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(externalIPProvider)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}
