// Package cmd provides the command tree of the manager token CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/parsonage/property-ops/config"
	"github.com/parsonage/property-ops/internal/integration/adapters"
)

// NewRootCommand builds the token command. Flags left unset fall back to the environment.
func NewRootCommand() *cobra.Command {
	var (
		email  string
		expiry time.Duration
		debug  bool
	)

	rootCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a manager bearer token for the property operations API",
		Long: `token signs a JWT for the property manager using JWT_SECRET and JWT_ISSUER.

The token is printed on stdout and its expiry on stderr.

Example:
  token --email manager@example.com --expiry 72h`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelInfo
			if debug {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(cmd, email, expiry)
		},
	}

	rootCmd.Flags().StringVar(&email, "email", "", "manager email to embed in the token (default MANAGER_EMAIL)")
	rootCmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (default JWT_EXPIRY)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func runToken(cmd *cobra.Command, email string, expiry time.Duration) error {
	cfg := config.Load()
	settings, err := config.LoadPropertySettings(cfg.Property)
	if err != nil {
		return fmt.Errorf("failed to load property settings: %w", err)
	}

	if email == "" {
		email = settings.ManagerEmail
	}
	if email == "" {
		return errors.New("an --email flag or MANAGER_EMAIL is required")
	}
	if expiry <= 0 {
		expiry = cfg.JWT.ManagerTokenExpiry
	}

	slog.Debug("Signing manager token", "email", email, "expiry", expiry)

	clock := adapters.NewSystemClock(settings.Location())
	tokens := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, expiry, settings.ManagerEmail, clock)

	token, expiresAt, err := tokens.GenerateManagerToken(context.Background(), email)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format(time.RFC3339))
	return nil
}

