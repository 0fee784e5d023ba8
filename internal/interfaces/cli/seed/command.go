package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pact-recycling/pact/internal/infrastructure/config"
	"github.com/pact-recycling/pact/internal/infrastructure/database"
	"github.com/pact-recycling/pact/internal/infrastructure/migration"
	"github.com/pact-recycling/pact/internal/infrastructure/repository"
	"github.com/pact-recycling/pact/internal/infrastructure/seed"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset",
		Long:  `Load the embedded demo member dataset into an empty database. Existing data is left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	migrationManager := migration.NewManager(env)
	if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log := logger.NewLogger()
	memberRepo := repository.NewMemberRepository(database.Get(), log)
	seeder := seed.NewSeeder(memberRepo, log)

	created, err := seeder.Seed(context.Background())
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	if created == 0 {
		fmt.Println("Database already has members, nothing to do")
		return nil
	}

	fmt.Printf("Seeded %d demo members\n", created)
	return nil
}
