package main

import (
	"github.com/sitewire/sitewire/pkg/cli"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

func main() {
	sm := cli.SitewireMain{
		Version: Version,
	}

	sm.Main()
}
