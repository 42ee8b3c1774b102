package main

import (
	"os"

	"github.com/openbootdotdev/synap/internal/cli"
	"github.com/openbootdotdev/synap/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}
