package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
	"invoicegen/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show [invoice.json]",
	Short: "Print a text summary of an invoice JSON document",
	Long: `Load an invoice JSON document and print a readable summary: parties,
line items with their derived amounts, and the invoice totals. Totals
are recomputed from the stored fields on every load, so they can never
disagree with the line items.`,
	Example: `  invoicegen show invoices/INV-2025-001.json`,
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("show")

	store := storage.NewStore(invoicesDir(cmd))
	inv, err := store.LoadJSON(args[0])
	if err != nil {
		log.Error().
			Err(err).
			Str("file", args[0]).
			Msg("Failed to load invoice")
		return err
	}

	number := inv.InvoiceNumber
	if number == "" {
		number = "-"
	}
	due := "-"
	if inv.DueDate != nil {
		due = inv.DueDate.Format(invoice.DateLayout)
	}

	fmt.Printf("Invoice %s\n", number)
	fmt.Printf("Date: %s  Due: %s  Currency: %s\n", inv.InvoiceDate.Format(invoice.DateLayout), due, inv.Currency)
	fmt.Printf("From: %s, %s\n", inv.Company.Name, inv.Company.Address)
	fmt.Printf("To:   %s, %s\n\n", inv.Customer.Name, inv.Customer.Address)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DESCRIPTION\tQTY\tUNIT PRICE\tTAX %\tLINE TOTAL")
	for _, it := range inv.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\n",
			it.Description,
			it.Quantity.String(),
			invoice.FormatCurrency(it.UnitPrice, inv.Currency),
			it.TaxRate.String(),
			invoice.FormatCurrency(it.Total(), inv.Currency),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nSubtotal: %s\n", invoice.FormatCurrency(inv.Subtotal(), inv.Currency))
	fmt.Printf("Tax:      %s\n", invoice.FormatCurrency(inv.TaxTotal(), inv.Currency))
	fmt.Printf("Total:    %s\n", invoice.FormatCurrency(inv.GrandTotal(), inv.Currency))

	if invoice.NonEmpty(inv.Notes) {
		fmt.Printf("\nNotes: %s\n", inv.Notes)
	}
	if invoice.NonEmpty(inv.AuthorizedBy) {
		fmt.Printf("Authorized by: %s\n", inv.AuthorizedBy)
	}

	return nil
}
