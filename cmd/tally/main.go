// cmd/tally/main.go
package main

import (
	"github.com/bool64/dev/version"
	cmd "github.com/mwiater/tally/internal/commands"
)

// Set with -ldflags "-X main.buildVersion=... -X main.buildCommit=... -X main.buildDate=...".
var (
	buildVersion = ""
	buildCommit  = "none"
	buildDate    = "unknown"
)

var (
	moduleVersion  = func() string { return version.Info().Version }
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// resolveVersion prefers the linker-provided version and falls back to the
// module version recorded in the binary's build info.
func resolveVersion() string {
	if buildVersion != "" {
		return buildVersion
	}
	if v := moduleVersion(); v != "" {
		return v
	}
	return "dev"
}

// main starts the tally CLI application by delegating to the
// cobra root command defined in the commands package.
func main() {
	setVersionInfo(resolveVersion(), buildCommit, buildDate)
	executeCmd()
}
