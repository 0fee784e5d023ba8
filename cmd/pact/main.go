package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pact-recycling/pact/internal/interfaces/cli/migrate"
	"github.com/pact-recycling/pact/internal/interfaces/cli/seed"
	"github.com/pact-recycling/pact/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pact",
		Short: "Pact - recycling commitment tracking service",
		Long:  `Pact tracks recycling program enrollments and annual weight commitments, with built-in server, migration, and seed commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
