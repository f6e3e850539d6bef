package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Operator tasks for the healthlinker database",
		Long: `Operator tasks for the healthlinker database.

Examples:
  seeder indexes                 # Create every MongoDB index
  seeder doctors --count 10      # Seed ten approved doctors with two weeks of slots
  seeder admin --email ops@example.com --password s3cret!
`,
		SilenceUsage: true,
	}

	cmd.AddCommand(indexesCmd())
	cmd.AddCommand(doctorsCmd())
	cmd.AddCommand(adminCmd())
	return cmd
}
