package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunarosa/shop/config"
	"github.com/lunarosa/shop/internal/seed"
	"github.com/lunarosa/shop/pkg/kvstore"
)

// shop seed — fill an empty store with the demo catalog.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with a demo catalog (skips non-empty collections)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		store, err := kvstore.Connect()
		if err != nil {
			return err
		}

		fmt.Printf("Seeding via %q store driver…\n", config.StoreDriver())
		return seed.RunAll(context.Background(), store)
	},
}
