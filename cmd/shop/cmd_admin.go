package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunarosa/shop/pkg/auth"
)

// shop admin:hash — bcrypt a password for ADMIN_PASSWORD_HASH.
var adminHashCmd = &cobra.Command{
	Use:   "admin:hash <password>",
	Short: "Hash a password for the ADMIN_PASSWORD_HASH config key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}
