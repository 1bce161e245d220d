// registry.go implements the per-network client registry.
//
// Design: One client per whitelisted network is built up front from
// configuration. Lookup is by validate.Net, so only a validated network
// name can select an endpoint.

package tezos

import (
	"fmt"

	"github.com/jpl-au/tzmcp/internal/config"
	"github.com/jpl-au/tzmcp/internal/validate"
)

// Registry holds a client for each supported network.
type Registry struct {
	clients map[validate.Net]*Client
}

// NewRegistry builds clients for every network from cfg. Endpoint
// resolution (environment, file, built-in default) is done by cfg.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	clients := make(map[validate.Net]*Client, len(validate.Networks()))
	for _, n := range validate.Networks() {
		ep := Endpoints{Node: cfg.Node(n), Indexer: cfg.Indexer(n)}
		if ep.Node == "" || ep.Indexer == "" {
			return nil, fmt.Errorf("no endpoints configured for %s", n)
		}
		clients[n] = New(n, ep, cfg.Timeout())
	}
	return &Registry{clients: clients}, nil
}

// NewRegistryFromClients builds a registry from existing clients, keyed by
// their network. Used by tests and by callers that construct clients
// themselves.
func NewRegistryFromClients(clients ...*Client) *Registry {
	r := &Registry{clients: make(map[validate.Net]*Client, len(clients))}
	for _, c := range clients {
		r.clients[c.Network()] = c
	}
	return r
}

// Client returns the client for a network.
func (r *Registry) Client(n validate.Net) (*Client, error) {
	if r == nil {
		return nil, fmt.Errorf("client registry not initialised")
	}
	c, ok := r.clients[n]
	if !ok {
		return nil, fmt.Errorf("no client for network %s", n)
	}
	return c, nil
}

// Networks returns the networks that have a client, in sorted order.
func (r *Registry) Networks() []validate.Net {
	if r == nil {
		return nil
	}
	var nets []validate.Net
	for _, n := range validate.Networks() {
		if _, ok := r.clients[n]; ok {
			nets = append(nets, n)
		}
	}
	return nets
}
