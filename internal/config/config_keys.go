// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go focuses on YAML structure and loading, while this
// file handles the CLI interface where config is accessed by string keys
// (e.g., "networks.ghostnet.node").
//
// Design: Pointers are used for optional limits so we can distinguish between
// "not set" (nil) and "explicitly set to zero". Defaults are only applied when
// the user hasn't set a value. Network keys are enumerated from the allowed
// network list, so "networks.<name>" can never name an unsupported network.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/tzmcp/internal/duration"
	"github.com/jpl-au/tzmcp/internal/validate"
)

const (
	keyMaxLimit  = "limits.max_limit"
	keyMaxAmount = "limits.max_amount"
	keyTimeout   = "http.timeout"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	var keys []string
	for _, n := range validate.Networks() {
		keys = append(keys, "networks."+n.String()+".node", "networks."+n.String()+".indexer")
	}
	return append(keys, keyMaxLimit, keyMaxAmount, keyTimeout)
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// networkKey splits "networks.<name>.<endpoint>".
func networkKey(key string) (validate.Net, string, bool) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 || parts[0] != "networks" {
		return "", "", false
	}
	if parts[2] != "node" && parts[2] != "indexer" {
		return "", "", false
	}
	n, err := validate.Network(parts[1])
	if err != nil || n.String() != parts[1] {
		return "", "", false
	}
	return n, parts[2], true
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	if n, endpoint, ok := networkKey(key); ok {
		if endpoint == "node" {
			return c.Node(n), nil
		}
		return c.Indexer(n), nil
	}
	switch key {
	case keyMaxLimit:
		return strconv.FormatInt(c.MaxLimit(), 10), nil
	case keyMaxAmount:
		return strconv.FormatInt(c.MaxAmount(), 10), nil
	case keyTimeout:
		return duration.Format(c.Timeout()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	if n, endpoint, ok := networkKey(key); ok {
		if err := checkURL(key, value); err != nil || value == "" {
			return fmt.Errorf("%w: %s must be an absolute http or https URL", ErrInvalidValue, key)
		}
		if c.Networks == nil {
			c.Networks = make(map[string]Network)
		}
		entry := c.Networks[n.String()]
		if endpoint == "node" {
			entry.Node = value
		} else {
			entry.Indexer = value
		}
		c.Networks[n.String()] = entry
		return nil
	}
	switch key {
	case keyMaxLimit:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil || v < MinMaxLimit || v > MaxMaxLimit {
			return fmt.Errorf("%w: %s must be an integer between %d and %d", ErrInvalidValue, key, MinMaxLimit, MaxMaxLimit)
		}
		c.Limits.MaxLimit = &v
	case keyMaxAmount:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil || v < MinMaxAmount || v > MaxMaxAmount {
			return fmt.Errorf("%w: %s must be an integer between %d and %d", ErrInvalidValue, key, MinMaxAmount, int64(MaxMaxAmount))
		}
		c.Limits.MaxAmount = &v
	case keyTimeout:
		if _, err := parseTimeout(value); err != nil {
			return err
		}
		c.HTTP.Timeout = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, key := range ValidKeys() {
		v, _ := c.Get(key)
		all[key] = v
	}
	return all
}

// IsSet returns true if the key has an explicit value in the file (not
// a default or an environment override).
func (c *Config) IsSet(key string) bool {
	if n, endpoint, ok := networkKey(key); ok {
		entry := c.Networks[n.String()]
		if endpoint == "node" {
			return entry.Node != ""
		}
		return entry.Indexer != ""
	}
	switch key {
	case keyMaxLimit:
		return c.Limits.MaxLimit != nil
	case keyMaxAmount:
		return c.Limits.MaxAmount != nil
	case keyTimeout:
		return c.HTTP.Timeout != ""
	default:
		return false
	}
}
