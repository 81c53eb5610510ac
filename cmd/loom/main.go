package main

import (
	"os"

	"github.com/go-loom/loom/cmd/loom/cmd"
)

func main() {
	// Command failures are reported through the error handler inside
	// Execute; main only sets the exit status.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
