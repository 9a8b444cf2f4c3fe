package invoice

import "github.com/shopspring/decimal"

// Sample returns the canonical example invoice written by the sample
// command. Dates are relative to today so the document always looks
// current.
func Sample() Invoice {
	due := Today().AddDate(0, 0, 14)
	return Invoice{
		Company: Company{
			Name:      "Nordwind Solutions",
			Address:   "Via Roma 1, 00100 Roma, Italy",
			GSTNumber: "IT12345678901",
			Email:     "info@example.com",
			Phone:     "+39 0123 456789",
		},
		Customer: Customer{
			Name:    "Acme Corp.",
			Address: "123 Business Rd, 75000 Paris, France",
			Email:   "billing@acme.com",
			Phone:   "+33 1 23 45 67 89",
		},
		Items: []Item{
			{
				Description: "Consulting Services, Week 41",
				Quantity:    decimal.NewFromInt(8),
				UnitPrice:   decimal.NewFromInt(120),
				TaxRate:     decimal.NewFromInt(22),
			},
			{
				Description: "Prototype Implementation",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(950),
				TaxRate:     decimal.NewFromInt(22),
			},
		},
		InvoiceNumber: "INV-2025-001",
		InvoiceDate:   Today(),
		DueDate:       &due,
		Currency:      DefaultCurrency,
		Notes:         "Thank you for your business!",
		AuthorizedBy:  "Nordwind Solutions",
	}
}
