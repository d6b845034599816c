// Package main is the entry point for the mdsift CLI.
package main

import (
	"os"

	"github.com/jmylchreest/mdsift/cmd/mdsift/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
