// Package main provides the entry point for the tsconfig CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tsresolve/tsconfig/cmd/tsconfig/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
