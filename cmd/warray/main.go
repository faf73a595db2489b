// Package main provides the warray CLI: inspect and index labeled arrays
// stored as YAML or JSON documents.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/warray/internal/logger"
)

const version = "v0.1.0-dev"

func main() {
	defer logger.Cleanup()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
