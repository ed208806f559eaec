package main

import (
	"os"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
