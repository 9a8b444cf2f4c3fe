package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
	"invoicegen/internal/pdf"
	"invoicegen/internal/storage"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Build an invoice from flags and save it as JSON",
	Long: `Build an invoice in one shot from command-line flags, validate it, and
save it as a JSON document. With --pdf the PDF is rendered as well.

Each --item flag adds one line in the form "description|qty|unit price|tax %".
Numeric item fields are parsed leniently: either "." or "," works as the
decimal separator, and malformed numbers fall back to 0. Required fields
(company and customer name/address, item descriptions) are rejected with
a message naming the field, and nothing is written.`,
	Example: `  invoicegen new \
    --company-name "Nordwind Solutions" --company-address "Via Roma 1, Roma" \
    --customer-name "Acme Corp." --customer-address "123 Business Rd, Paris" \
    --number INV-2025-007 --due 2025-11-30 \
    --item "Consulting|8|120|22" --item "Prototype|1|950|22" \
    --pdf`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("company-name", "", "Issuing company name (required)")
	newCmd.Flags().String("company-address", "", "Issuing company address (required)")
	newCmd.Flags().String("company-gst", "", "Company GST/VAT number")
	newCmd.Flags().String("company-email", "", "Company email")
	newCmd.Flags().String("company-phone", "", "Company phone")

	newCmd.Flags().String("customer-name", "", "Customer name (required)")
	newCmd.Flags().String("customer-address", "", "Customer address (required)")
	newCmd.Flags().String("customer-email", "", "Customer email")
	newCmd.Flags().String("customer-phone", "", "Customer phone")

	newCmd.Flags().String("number", "", "Invoice number (empty: timestamp-derived file name)")
	newCmd.Flags().String("date", "", "Invoice date, YYYY-MM-DD (default: today)")
	newCmd.Flags().String("due", "", "Due date, YYYY-MM-DD")
	newCmd.Flags().String("currency", invoice.DefaultCurrency, "Currency code")
	newCmd.Flags().String("notes", "", "Free-text notes")
	newCmd.Flags().String("authorized-by", "", "Signature name")

	newCmd.Flags().StringArray("item", nil, `Line item "description|qty|unit price|tax %" (repeatable)`)
	newCmd.Flags().Bool("pdf", false, "Also render the PDF")
}

func runNew(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("new")

	inv, err := buildInvoice(cmd)
	if err != nil {
		return err
	}
	if err := inv.Validate(); err != nil {
		return err
	}

	store := storage.NewStore(invoicesDir(cmd))
	jsonPath, err := store.SaveJSON(inv, "")
	if err != nil {
		log.Error().
			Err(err).
			Msg("Failed to save invoice")
		return err
	}
	fmt.Printf("Invoice saved to %s\n", jsonPath)

	if renderPDF, _ := cmd.Flags().GetBool("pdf"); renderPDF {
		pdfPath := store.PDFPath(inv.InvoiceNumber)
		if err := pdf.NewRenderer().Render(inv, pdfPath); err != nil {
			log.Error().
				Err(err).
				Str("output", pdfPath).
				Msg("Failed to render PDF")
			return err
		}
		fmt.Printf("PDF written to %s\n", pdfPath)
	}

	log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Str("grand_total", invoice.FormatCurrency(inv.GrandTotal(), inv.Currency)).
		Msg("Invoice created")

	return nil
}

// buildInvoice reads the flag state into a fresh invoice value, one
// way, on demand. Dates are strict; item numbers are lenient.
func buildInvoice(cmd *cobra.Command) (invoice.Invoice, error) {
	flagStr := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}

	inv := invoice.NewInvoice(
		invoice.Company{
			Name:      flagStr("company-name"),
			Address:   flagStr("company-address"),
			GSTNumber: flagStr("company-gst"),
			Email:     flagStr("company-email"),
			Phone:     flagStr("company-phone"),
		},
		invoice.Customer{
			Name:    flagStr("customer-name"),
			Address: flagStr("customer-address"),
			Email:   flagStr("customer-email"),
			Phone:   flagStr("customer-phone"),
		},
	)
	inv.InvoiceNumber = flagStr("number")
	inv.Currency = flagStr("currency")
	inv.Notes = flagStr("notes")
	inv.AuthorizedBy = flagStr("authorized-by")

	if date := flagStr("date"); date != "" {
		d, err := time.Parse(invoice.DateLayout, date)
		if err != nil {
			return invoice.Invoice{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
		}
		inv.InvoiceDate = d
	}
	if due := flagStr("due"); due != "" {
		d, err := time.Parse(invoice.DateLayout, due)
		if err != nil {
			return invoice.Invoice{}, fmt.Errorf("invalid --due %q: expected YYYY-MM-DD", due)
		}
		inv.DueDate = &d
	}

	lines, _ := cmd.Flags().GetStringArray("item")
	for _, line := range lines {
		inv.Items = append(inv.Items, parseItem(line))
	}

	return inv, nil
}

// parseItem splits "description|qty|unit price|tax %". Missing numeric
// parts default to 0, like any other malformed numeric entry.
func parseItem(line string) invoice.Item {
	parts := strings.SplitN(line, "|", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return invoice.Item{
		Description: strings.TrimSpace(parts[0]),
		Quantity:    invoice.ParseDecimal(parts[1], "0"),
		UnitPrice:   invoice.ParseDecimal(parts[2], "0"),
		TaxRate:     invoice.ParseDecimal(parts[3], "0"),
	}
}
