// Package main provides the tautui command.
//
// Usage:
//
//	tautui caps [--json]              Show detected terminal capabilities
//	tautui width [text...]            Print visible width in cells
//	tautui strip [text...]            Remove escape sequences
//	tautui truncate -w N [text...]    Truncate to N cells
//	tautui wrap -w N [text...]        Word-wrap to N cells
//	tautui version                    Print version information
package main

import (
	"os"

	"github.com/steipete/tautui/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
