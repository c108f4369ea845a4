// Package main provides the entry point for the resistor-scan tool.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"resistor-scan/cmd"
	"resistor-scan/internal/version"
)

func main() {
	root := cmd.NewRootCmd()

	// fang wraps cobra with completions, manpages and --version handling,
	// and cancels the command context on the listed signals.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
