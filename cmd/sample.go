package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
	"invoicegen/internal/storage"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample invoice JSON document",
	Long: `Write the canonical example invoice as sample.json into the invoices
directory and print its path. Useful as a starting point for hand-edited
invoices and as a render test input.`,
	Example: `  invoicegen sample
  invoicegen sample --dir /tmp/invoices`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("sample")

	store := storage.NewStore(invoicesDir(cmd))
	path, err := store.SaveJSON(invoice.Sample(), store.JSONPath("sample"))
	if err != nil {
		log.Error().
			Err(err).
			Msg("Failed to write sample invoice")
		return err
	}

	out, err := json.MarshalIndent(map[string]string{"sample_json": path}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
