package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/config"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/middleware"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage access tokens",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (issue)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue <user>",
	Short: "Issue an access token",
	Long: `Issue a signed access token for a caller of the exchange API.

The token is signed with EXCHANGE_TOKEN_SECRET and expires after token_ttl
seconds unless --ttl is given.

Example:
  exchangectl token issue garygeeke
  exchangectl token issue garygeeke --ttl 1h`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if ttl == 0 {
			ttl = cfg.TokenLifetime()
		}

		secret, err := tokenSecret()
		if err != nil {
			return err
		}

		token, err := issueToken(secret, cfg.ServerName, args[0], ttl)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().Duration("ttl", 0, "token lifetime (default token_ttl)")
}

func issueToken(secret []byte, issuer, userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("invalid token lifetime %s", ttl)
	}
	return middleware.NewJWTAuthenticator(secret, issuer).Issue(userID, ttl)
}
