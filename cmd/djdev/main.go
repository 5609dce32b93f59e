// Package main is the entry point for the djdev CLI.
package main

import (
	"fmt"
	"os"

	"github.com/djangodev/cli/internal/cmd"
	"github.com/djangodev/cli/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Operation failures were logged where they were detected.
		if cmd.ShouldPrint(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		code := cmd.ExitCodeFromError(err)
		output.Debug("exiting", "code", code, "status", cmd.ExitCodeName(code))
		os.Exit(code)
	}
}
