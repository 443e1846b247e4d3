// Package main provides the integreat CLI.
//
// Usage:
//
//	integreat --dataInput data.csv [flags]
//
// The tool reads per-entity intensity measurements from multiple
// experiment levels, aligns every level pair, and prints one
// consistency score per entity to stdout. All diagnostics go to
// stderr; the exit code is non-zero on any fatal condition.
package main

import (
	"fmt"
	"os"

	"github.com/jay11071998/integreat/cmd/integreat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
