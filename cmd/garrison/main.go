package main

import (
	"os"

	"github.com/spf13/cobra"

	"garrison/internal/interfaces/cli/migrate"
	"garrison/internal/interfaces/cli/seed"
	"garrison/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "garrison",
		Short: "Garrison - military asset management API",
		Long:  `Garrison tracks assets, purchases, transfers, and assignments across bases, with a full audit trail of every change.`,
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
