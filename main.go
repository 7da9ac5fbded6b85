package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/cmd/migrate"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/cmd/serve"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bloodconnect",
		Short:        "BloodConnect privileged-action gateway",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serve.NewServeCommand())
	rootCmd.AddCommand(migrate.NewMigrateCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
