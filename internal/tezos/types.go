package tezos

import (
	"encoding/json"
	"strconv"
)

// BlockHeader is the subset of a node block header that is reported.
type BlockHeader struct {
	Protocol        string `json:"protocol"`
	ChainID         string `json:"chain_id"`
	Hash            string `json:"hash"`
	Level           int64  `json:"level"`
	Predecessor     string `json:"predecessor"`
	Timestamp       string `json:"timestamp"`
	Baker           string `json:"baker"`
	PayloadProducer string `json:"payload_producer"`
}

// Producer returns the baker, falling back to the payload producer, or
// "N/A" when the header carries neither.
func (h *BlockHeader) Producer() string {
	switch {
	case h.Baker != "":
		return h.Baker
	case h.PayloadProducer != "":
		return h.PayloadProducer
	default:
		return "N/A"
	}
}

// Constants holds protocol constants as returned by the node. Values vary
// by protocol, so they are kept raw and read by name.
type Constants map[string]json.RawMessage

// Get returns a constant rendered as plain text, or "N/A" if it is absent.
// The node encodes most numeric constants as JSON strings.
func (c Constants) Get(name string) string {
	raw, ok := c[name]
	if !ok {
		return "N/A"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return string(raw)
}

// Account is an address reference in an indexer operation.
type Account struct {
	Alias   string `json:"alias,omitempty"`
	Address string `json:"address"`
}

// Operation is one operation as reported by the indexer.
type Operation struct {
	Type      string   `json:"type"`
	ID        int64    `json:"id"`
	Level     int64    `json:"level"`
	Timestamp string   `json:"timestamp"`
	Hash      string   `json:"hash"`
	Counter   int64    `json:"counter"`
	Sender    *Account `json:"sender,omitempty"`
	Target    *Account `json:"target,omitempty"`
	Amount    int64    `json:"amount"`
	BakerFee  int64    `json:"bakerFee"`
	GasUsed   int64    `json:"gasUsed"`
	Status    string   `json:"status"`
}

// From returns the sender address or "N/A".
func (o Operation) From() string {
	if o.Sender == nil || o.Sender.Address == "" {
		return "N/A"
	}
	return o.Sender.Address
}

// To returns the target address or "N/A".
func (o Operation) To() string {
	if o.Target == nil || o.Target.Address == "" {
		return "N/A"
	}
	return o.Target.Address
}

// LevelString renders the block level for display.
func (o Operation) LevelString() string {
	return strconv.FormatInt(o.Level, 10)
}
