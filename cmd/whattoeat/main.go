// Package main is the entry point for the whattoeat binary.
// Its sole responsibility is handing control to the command tree.
package main

import (
	"os"

	"github.com/pkordes/whattoeat/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
