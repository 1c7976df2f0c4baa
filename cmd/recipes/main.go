// ABOUTME: Main entry point for the recipes CLI
// ABOUTME: Dispatches to the browse, serve, list and status commands

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
