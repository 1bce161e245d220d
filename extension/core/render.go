// render.go prints markdown pages for the guide and llm commands.
//
// Terminal output gets glamour rendering for readability; pipe/redirect
// gets raw markdown for machine consumption and LLM context loading.

package core

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/tzmcp/cmd"
	"golang.org/x/term"
)

func printMarkdown(content string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return
		}
	}
	fmt.Fprint(cmd.Out(), content)
}
