package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Overridden at build time with -ldflags "-X main.version=…".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shop version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shop %s (%s)\n", version, runtime.Version())
	},
}
