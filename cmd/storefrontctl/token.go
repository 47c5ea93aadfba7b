package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/authn"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

var (
	tokenUser  string
	tokenEmail string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token signed with JWT_SECRET for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUser == "" {
			return errors.New("--user is required")
		}
		identity, err := authn.NewJWTIdentity(cfg.JWTSecret, cfg.JWTTTL, clock.NewRealClock())
		if err != nil {
			return err
		}
		token, err := identity.Issue(&domain.User{ID: tokenUser, Email: tokenEmail})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "user id placed in the sub claim")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
}
