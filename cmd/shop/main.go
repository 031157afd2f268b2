package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import seeders so their init() funcs register themselves.
	_ "github.com/lunarosa/shop/internal/seed"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Luna Rosa — cosmetics storefront",
	Long:  "Luna Rosa is a small cosmetics storefront with a catalog, cart, checkout, and admin panel, persisted through a pluggable key-value store.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(adminHashCmd)
	rootCmd.AddCommand(versionCmd)
}
