package main

import (
	"os"

	"github.com/prismagen/tsgen/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
