// Package seed hosts the `garrison seed` command.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"garrison/internal/infrastructure/auth"
	"garrison/internal/infrastructure/config"
	"garrison/internal/infrastructure/database"
	"garrison/internal/infrastructure/persistence/seeds"
	"garrison/internal/shared/logger"
)

var (
	env           string
	adminEmail    string
	adminPassword string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Insert the base roster and an initial admin account into the database.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&adminEmail, "admin-email", "admin@garrison.local", "Email for the seeded admin account")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for the seeded admin account (required)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if adminPassword == "" {
		return fmt.Errorf("--admin-password is required")
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := seeds.SeedBases(database.Get()); err != nil {
		return fmt.Errorf("failed to seed bases: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := seeds.SeedAdminUser(database.Get(), hasher, adminEmail, adminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Infow("seed data applied", "admin_email", adminEmail)
	return nil
}
