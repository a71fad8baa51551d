package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "exchangectl",
	Short: "Metadata exchange server and administration tool",
	Long: `Run the metadata exchange server, manage its database and apply
exchange documents on behalf of asset managers.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
