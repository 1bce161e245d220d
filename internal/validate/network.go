// network.go implements network name validation against a fixed whitelist.
//
// Design: Network names later select an endpoint URL from configuration and
// an environment variable name. Only whitelisted names ever reach that
// lookup, so a caller cannot steer requests to an arbitrary host or
// variable.

package validate

import (
	"fmt"
	"slices"
	"strings"
)

// Net is a validated, normalised network name.
type Net string

const (
	Mainnet   Net = "mainnet"
	Shadownet Net = "shadownet"
	Ghostnet  Net = "ghostnet"
)

// allowedNetworks is sorted; error messages list it in this order.
var allowedNetworks = []Net{Ghostnet, Mainnet, Shadownet}

// Networks returns the whitelist in sorted order.
func Networks() []Net {
	return slices.Clone(allowedNetworks)
}

// NetworkNames returns the whitelist as plain strings, sorted.
func NetworkNames() []string {
	names := make([]string, len(allowedNetworks))
	for i, n := range allowedNetworks {
		names[i] = string(n)
	}
	return names
}

// Network validates a network name and returns its normalised form.
//
// Validation rules:
//   - Surrounding whitespace trimmed, case folded to lower
//   - Empty (after trimming) rejected
//   - Must be one of mainnet, shadownet, ghostnet
func Network(raw string) (Net, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	if norm == "" {
		return "", newError("network", ErrInvalidNetwork, "network must be a non-empty string")
	}
	n := Net(norm)
	if !slices.Contains(allowedNetworks, n) {
		return "", newError("network", ErrInvalidNetwork, fmt.Sprintf(
			"invalid network: allowed: %s, got: %q",
			strings.Join(NetworkNames(), ", "), norm))
	}
	return n, nil
}

// String returns the network name.
func (n Net) String() string {
	return string(n)
}
