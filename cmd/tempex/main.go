package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/tempex/cmd/tempex/commands"
	"github.com/teranos/tempex/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tempex",
	Short: "tempex - Natural-language temporal expression parser",
	Long: `tempex - Natural-language temporal expression parser.

tempex recognizes phrases like "early morning of October 7, 2023",
"between 2020 and 2023", or "circa 1990" and resolves them against a
reference instant to a concrete time interval.

Examples:
  tempex parse "early morning of October 7, 2023"
  tempex parse "circa 1990" --anchor 2023-10-07T12:00:00Z
  tempex parse "between 2020 and 2023" --format json
  tempex version`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if err := logger.Initialize(jsonLogs, verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a tempex.toml config file")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
