package main

import "github.com/tracker-tv/codeowners-audit/internal/cli"

// Populated via -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetBuildInfo(version, commit, date)
	cli.Execute()
}
