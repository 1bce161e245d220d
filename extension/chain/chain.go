// Package chain provides the chain extension for tzmcp.
// It registers the query commands: balance, storage, operations, operation,
// block and network-info.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/extension"
	svcchain "github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/jpl-au/tzmcp/internal/progress"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the chain extension.
type Extension struct {
	svc *svcchain.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "chain".
func (e *Extension) Name() string { return "chain" }

// Init stores the shared chain service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the query commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newBalanceCmd(),
		e.newStorageCmd(),
		e.newOperationsCmd(),
		e.newOperationCmd(),
		e.newBlockCmd(),
		e.newNetworkInfoCmd(),
	}
}

// MCPTools returns nil - the MCP server registers the query tools itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// query runs one chain operation, records the audit entry and prints the
// result. Failures are printed as their caller-facing reply text. A spinner
// shows on an interactive stderr while the request is in flight.
func (e *Extension) query(c *cobra.Command, ev *log.Builder, op func(context.Context, *svcchain.Service) (string, error)) error {
	sp := progress.NewSpinner("querying " + cmd.Network())
	sp.Start()
	text, err := op(c.Context(), e.svc)
	sp.Stop()
	ev.Write(err)
	if err != nil {
		return cmd.PrintJSONError(errors.New(svcchain.Reply(err)))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"network": cmd.Network(), "result": text})
	}
	fmt.Fprintln(cmd.Out(), text)
	return nil
}
