// Package main provides the charlton command: synthetic balanced designs and
// demo datasets written as CSV, JSON, YAML, Excel or Arrow.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("charlton failed", "error", err)
		os.Exit(1)
	}
}
