package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicegen/internal/logger"
	"invoicegen/internal/pdf"
	"invoicegen/internal/storage"
)

var renderCmd = &cobra.Command{
	Use:   "render [invoice.json]",
	Short: "Render an invoice JSON document to a PDF file",
	Long: `Load an invoice JSON document and render it as an A4 PDF.

The output path defaults to <invoices-dir>/<invoice_number>.pdf; when
the document carries no invoice number a timestamp-derived name is
used. A malformed document (bad JSON, bad decimal text, bad date text)
fails the whole load.`,
	Example: `  # Render next to the other invoices
  invoicegen render invoices/INV-2025-001.json

  # Render to an explicit output path
  invoicegen render invoice.json -o /tmp/invoice.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output PDF path (default: derived from the invoice number)")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("render")

	outputPath, _ := cmd.Flags().GetString("output")
	jsonPath := args[0]

	store := storage.NewStore(invoicesDir(cmd))

	inv, err := store.LoadJSON(jsonPath)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", jsonPath).
			Msg("Failed to load invoice")
		return err
	}

	if outputPath == "" {
		outputPath = store.PDFPath(inv.InvoiceNumber)
	}

	renderer := pdf.NewRenderer()
	if err := renderer.Render(inv, outputPath); err != nil {
		log.Error().
			Err(err).
			Str("output", outputPath).
			Msg("Failed to render PDF")
		return err
	}

	fmt.Printf("PDF written to %s\n", outputPath)
	return nil
}
