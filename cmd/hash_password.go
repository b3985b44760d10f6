package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Hash a password for the admin credential config",
	Long:  `Print the bcrypt hash to place in the admin.password_hash config field.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		fmt.Println(string(hash))
	},
}
