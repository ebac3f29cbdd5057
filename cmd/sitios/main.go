package main

import (
	"os"

	"github.com/spf13/cobra"

	"sitios/internal/interfaces/cli/migrate"
	"sitios/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitios",
		Short: "Sitios - places directory backend",
		Long:  `Sitios is the REST backend for the places directory, with authentication, session tracking and two-factor support built in.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
