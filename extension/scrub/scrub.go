// Package scrub provides the scrub extension for tzmcp.
// It registers the "scrub" command and the tezos_scrub_text MCP tool, both
// of which run text through one of the sanitizer pipelines.
package scrub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/extension"
	"github.com/jpl-au/tzmcp/internal/chain"
	"github.com/jpl-au/tzmcp/internal/diff"
	"github.com/jpl-au/tzmcp/internal/log"
	"github.com/jpl-au/tzmcp/internal/sanitize"
	"github.com/jpl-au/tzmcp/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// MaxInput bounds the text accepted from stdin or a tool call.
const MaxInput = 1 << 20

// ErrInputTooLarge is returned when the text exceeds MaxInput bytes.
var ErrInputTooLarge = errors.New("input too large")

func init() {
	extension.Register(&Extension{})
}

// Extension implements the scrub extension.
type Extension struct{}

var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Offline   = (*Extension)(nil)
)

// Name returns "scrub".
func (e *Extension) Name() string { return "scrub" }

// OfflineCommands returns "scrub": it needs neither config nor network.
func (e *Extension) OfflineCommands() []string {
	return []string{"scrub"}
}

// Commands returns the scrub command.
func (e *Extension) Commands() []*cobra.Command {
	c := &cobra.Command{
		Use:   "scrub [text...]",
		Short: "Run text through a sanitizer",
		Long: `Run text through the error pipeline (default) or the log pipeline.

Reads stdin when no text is given.

  tzmcp scrub "open /home/me/.tezos/key: permission denied"
  tzmcp scrub --log < node.log
  tzmcp scrub --diff "dial https://user:pw@node:8732"
  tzmcp scrub --explain "..."

See 'tzmcp guide scrub' for the rules.`,
		RunE: runScrub,
	}
	c.Flags().Bool(extension.FlagLog, false, "Use the log pipeline (secret keys, seed phrases)")
	c.Flags().Bool(extension.FlagDiff, false, "Show a diff of raw and scrubbed text")
	c.Flags().Bool(extension.FlagExplain, false, "List which passes changed the text")
	return []*cobra.Command{c}
}

// MCPTools returns tezos_scrub_text.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{{
		Tool: mcp.NewTool("tezos_scrub_text",
			mcp.WithDescription("Remove paths, credentials, secret keys and seed phrases from text before quoting it"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Text to scrub")),
			mcp.WithString("pipeline", mcp.Description("error (default) or log")),
		),
		Handler: scrubTool,
	}}
}

// pipeline returns the named pipeline.
func pipeline(name string) (sanitize.Pipeline, error) {
	switch name {
	case "", "error":
		return sanitize.ErrorPipeline(), nil
	case "log":
		return sanitize.LogPipeline(), nil
	}
	return sanitize.Pipeline{}, fmt.Errorf("unknown pipeline %q (valid: error, log)", name)
}

// input returns the text to scrub from args, or from r when there are none.
func input(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxInput+1))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) > MaxInput {
		return "", ErrInputTooLarge
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func runScrub(c *cobra.Command, args []string) error {
	useLog, _ := c.Flags().GetBool(extension.FlagLog)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)
	explain, _ := c.Flags().GetBool(extension.FlagExplain)

	name := "error"
	if useLog {
		name = "log"
	}
	p, _ := pipeline(name)

	raw, err := input(args, c.InOrStdin())
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	steps := p.Trace(raw)
	clean := raw
	if len(steps) > 0 {
		clean = steps[len(steps)-1].Output
	}

	// The raw text is never logged.
	log.Event("scrub:scrub", "scrub").Detail("pipeline", name).Detail("changed", clean != raw).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"pipeline": name,
			"version":  sanitize.Version,
			"output":   clean,
			"passes":   changedPasses(steps),
		})
	}

	w := cmd.Out()
	if explain {
		for _, s := range steps {
			mark := " "
			if s.Changed {
				mark = "*"
			}
			fmt.Fprintf(w, "%s %s\n", mark, s.Pass)
		}
	}
	if showDiff {
		colour := false
		if f, ok := w.(*os.File); ok {
			colour = term.IsTerminal(int(f.Fd()))
		}
		fmt.Fprint(w, diff.Compute(raw, clean, "raw", name).Format(colour))
		return nil
	}
	fmt.Fprintln(w, clean)
	return nil
}

// changedPasses returns the names of the passes that altered the text.
func changedPasses(steps []sanitize.Step) []string {
	names := []string{}
	for _, s := range steps {
		if s.Changed {
			names = append(names, s.Pass)
		}
	}
	return names
}

// scrubTool handles tezos_scrub_text tool calls.
func scrubTool(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := req.Params.Arguments.(map[string]any)

	ev := log.Event("mcp:tezos_scrub_text", "scrub")
	text, err := validate.Text("text", args["text"])
	if err == nil && len(text) > MaxInput {
		err = ErrInputTooLarge
	}
	name := "error"
	if err == nil {
		if v, ok := args["pipeline"]; ok && v != nil {
			name, err = validate.Text("pipeline", v)
		}
	}
	var p sanitize.Pipeline
	if err == nil {
		p, err = pipeline(name)
	}
	ev.Detail("pipeline", name).Write(err)
	if err != nil {
		return mcp.NewToolResultError(chain.ValidationPrefix + sanitize.Err(err)), nil
	}
	return mcp.NewToolResultText(p.Run(text)), nil
}
