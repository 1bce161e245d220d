// Package all imports all built-in tzmcp extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/tzmcp/extension/chain"
	_ "github.com/jpl-au/tzmcp/extension/check"
	_ "github.com/jpl-au/tzmcp/extension/core"
	_ "github.com/jpl-au/tzmcp/extension/scrub"
)
