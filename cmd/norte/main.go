package main

import (
	"os"

	"github.com/spf13/cobra"

	"norte/internal/interfaces/cli/migrate"
	"norte/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "norte",
		Short: "Norte - business operations backend",
		Long:  `Norte is the operations backend for customers, budgets, service tickets and the shared calendar, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
