// Package main provides the entry point for the xgbtree CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/vareth-ml/xgbtree/cmd/xgbtree/commands"
	"github.com/vareth-ml/xgbtree/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := commands.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
