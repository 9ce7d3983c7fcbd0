// File: main.go
// Title: plinth CLI Entry Point
// Description: Entry point for the plinth command-line tool.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/plinth-go/plinth/cmd/plinth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
