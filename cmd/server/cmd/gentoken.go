package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gatherly/server/internal/auth"
)

var (
	gentokenUser   string
	gentokenExpiry time.Duration
)

var gentokenCmd = &cobra.Command{
	Use:   "gentoken",
	Short: "Generate a JWT for a user",
	Long: `Generate a signed JWT bearer token for the given user id, using the
configured JWT_SECRET. Useful for local development and API testing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if gentokenUser == "" {
			return fmt.Errorf("--user is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		expiry := cfg.Auth.JWTExpiry
		if gentokenExpiry > 0 {
			expiry = gentokenExpiry
		}

		manager := auth.NewJWTManager(cfg.Auth.JWTSecret, expiry, cfg.Auth.Issuer)
		token, err := manager.Generate(gentokenUser)
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	gentokenCmd.Flags().StringVar(&gentokenUser, "user", "", "user id to embed as the token subject")
	gentokenCmd.Flags().DurationVar(&gentokenExpiry, "expiry", 0, "token lifetime (default: JWT_EXPIRY_HOURS from config)")
}
