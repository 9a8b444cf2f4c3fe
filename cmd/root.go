package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicegen/internal/config"
	"invoicegen/internal/logger"
)

var version = "1.0.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "invoicegen",
	Short: "Invoicegen - create, store and render invoices",
	Long: `Invoicegen is a command-line invoice generator. Invoices are kept as
JSON documents with exact decimal amounts and rendered to A4 PDF files.

All output lands in one invoices directory, taken from the --dir flag,
the INVOICES_DIR environment variable, or the default "invoices".`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Invoicegen!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

// Execute runs the root command. A nil cfg falls back to defaults.
func Execute(c *config.Config) {
	cfg = c

	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Invoices output directory (overrides INVOICES_DIR)")
}

// invoicesDir resolves the output directory: flag, then config, then
// the built-in default. Output paths never depend on ambient state
// beyond this one explicit value.
func invoicesDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir
	}
	if cfg != nil && cfg.InvoicesDir != "" {
		return cfg.InvoicesDir
	}
	return "invoices"
}
