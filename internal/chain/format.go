// format.go renders operation results as plain text for the caller.
//
// Separated from chain.go so the operations read as validate, fetch,
// format. The layouts are line-oriented "key: value" blocks that an LLM
// can quote back without reformatting.

package chain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpl-au/tzmcp/internal/tezos"
	"github.com/jpl-au/tzmcp/internal/validate"
)

func formatBalance(id validate.Identifier, n validate.Net, mutez int64) string {
	return fmt.Sprintf("Address: %s\nNetwork: %s\nBalance: %s", id, n, tezos.FormatTez(mutez))
}

func formatStorage(id validate.Identifier, n validate.Net, raw json.RawMessage) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(raw)
	}
	return fmt.Sprintf("storage of %s on %s:\n%s", id, n, pretty.String())
}

func writeOperation(b *strings.Builder, i int, op tezos.Operation) {
	fmt.Fprintf(b, "%d. hash: %s\n", i, op.Hash)
	fmt.Fprintf(b, "   type: %s\n", op.Type)
	fmt.Fprintf(b, "   from: %s\n", op.From())
	fmt.Fprintf(b, "   to: %s\n", op.To())
	fmt.Fprintf(b, "   amount: %s\n", tezos.FormatTez(op.Amount))
	fmt.Fprintf(b, "   status: %s\n", op.Status)
	fmt.Fprintf(b, "   level: %s\n", op.LevelString())
	fmt.Fprintf(b, "   timestamp: %s\n\n", op.Timestamp)
}

func formatOperations(id validate.Identifier, n validate.Net, ops []tezos.Operation) string {
	if len(ops) == 0 {
		return fmt.Sprintf("no recent operations found for %s on %s", id, n)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "recent operations for %s on %s:\n\n", id, n)
	for i, op := range ops {
		writeOperation(&b, i+1, op)
	}
	return b.String()
}

func formatOperation(hash string, n validate.Net, ops []tezos.Operation) string {
	if len(ops) == 0 {
		return fmt.Sprintf("operation %s not found on %s", hash, n)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "operation %s on %s (%d in group):\n\n", hash, n, len(ops))
	for i, op := range ops {
		writeOperation(&b, i+1, op)
	}
	return b.String()
}

func formatBlock(n validate.Net, h *tezos.BlockHeader) string {
	return fmt.Sprintf(`block information (%s):
level: %d
hash: %s
timestamp: %s
baker: %s
protocol: %s
`, n, h.Level, h.Hash, h.Timestamp, h.Producer(), h.Protocol)
}

func formatNetwork(n validate.Net, h *tezos.BlockHeader, c tezos.Constants) string {
	threshold := c.Get("consensus_threshold")
	if threshold == "N/A" {
		threshold = c.Get("consensus_threshold_size")
	}
	return fmt.Sprintf(`tezos network information (%s):

protocol: %s
head level: %d
time between blocks: %s seconds
hard gas limit per operation: %s
hard storage limit per operation: %s
cost per byte: %s mutez
consensus threshold: %s
`, n, h.Protocol, h.Level,
		c.Get("minimal_block_delay"),
		c.Get("hard_gas_limit_per_operation"),
		c.Get("hard_storage_limit_per_operation"),
		c.Get("cost_per_byte"),
		threshold)
}

func formatCheckedAddress(id validate.Identifier) string {
	return fmt.Sprintf("valid %s address (%s): %s", string(id.Kind), id.Kind, id)
}

func formatAmount(mutez int64) string {
	return fmt.Sprintf("%d mutez = %s", mutez, tezos.FormatTez(mutez))
}
