// llm.go implements the "tzmcp llm" command for LLM integration hints.
//
// Design: Reads the tools and validation guide pages rather than keeping a
// separate copy, so an agent reading this output and one calling
// tezos_guide see the same rules.

package core

import (
	"github.com/jpl-au/tzmcp/cmd"
	"github.com/jpl-au/tzmcp/guide"
	"github.com/spf13/cobra"
)

func newLlmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "llm",
		Short: "Getting started guide for LLMs",
		Long:  `Quick reference for LLMs: the MCP tools and the input rules they enforce.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tools, err := guide.Get("tools")
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			rules, err := guide.Get("validation")
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			printMarkdown(tools + "\n" + rules)
			return nil
		},
	}
}
