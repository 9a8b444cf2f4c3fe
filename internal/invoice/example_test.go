package invoice_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"invoicegen/internal/invoice"
)

// Example demonstrates building an invoice and reading its derived
// totals. Totals are recomputed from the stored fields on every call.
func Example() {
	inv := invoice.NewInvoice(
		invoice.Company{Name: "Nordwind Solutions", Address: "Via Roma 1, Roma"},
		invoice.Customer{Name: "Acme Corp.", Address: "123 Business Rd, Paris"},
	)
	inv.Items = []invoice.Item{
		{Description: "Consulting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		{Description: "Hosting", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), TaxRate: decimal.NewFromInt(10)},
	}

	fmt.Println("Subtotal:", invoice.FormatCurrency(inv.Subtotal(), inv.Currency))
	fmt.Println("Tax:", invoice.FormatCurrency(inv.TaxTotal(), inv.Currency))
	fmt.Println("Total:", invoice.FormatCurrency(inv.GrandTotal(), inv.Currency))
	// Output:
	// Subtotal: 200,00 EUR
	// Tax: 10,00 EUR
	// Total: 210,00 EUR
}

func ExampleItem() {
	it := invoice.Item{
		Description: "Consulting",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromInt(10),
		TaxRate:     decimal.NewFromInt(10),
	}
	fmt.Println(it.Subtotal(), it.TaxAmount(), it.Total())
	// Output: 20.00 2.00 22.00
}

func ExampleParseDecimal() {
	fmt.Println(invoice.ParseDecimal("12,34", "0"))
	fmt.Println(invoice.ParseDecimal("oops", "1"))
	// Output:
	// 12.34
	// 1
}

func ExampleFormatCurrency() {
	fmt.Println(invoice.FormatCurrency(decimal.NewFromFloat(1234.5), "EUR"))
	// Output: 1.234,50 EUR
}
