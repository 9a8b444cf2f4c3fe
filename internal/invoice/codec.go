package invoice

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Document field encodings:
//   - decimals are written as their exact canonical decimal text
//     ("10.00" stays "10.00" across a save/load cycle),
//   - dates are written as YYYY-MM-DD, a missing due date as null,
//   - company/customer are nested objects.
//
// The reader is permissive about missing optional fields (they default)
// but load-fatal on malformed decimal or date text.

type companyDoc struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	GSTNumber string `json:"gst_number"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type customerDoc struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type itemDoc struct {
	Description string          `json:"description"`
	Quantity    json.RawMessage `json:"quantity"`
	UnitPrice   json.RawMessage `json:"unit_price"`
	TaxRate     json.RawMessage `json:"tax_rate"`
}

type invoiceDoc struct {
	Company       companyDoc  `json:"company"`
	Customer      customerDoc `json:"customer"`
	Items         []itemDoc   `json:"items"`
	InvoiceNumber string      `json:"invoice_number"`
	InvoiceDate   *string     `json:"invoice_date"`
	DueDate       *string     `json:"due_date"`
	Currency      *string     `json:"currency"`
	Notes         string      `json:"notes"`
	AuthorizedBy  string      `json:"authorized_by"`
}

// ToJSON encodes inv as an indented JSON document per the encoding
// rules above. The output is the durable interchange format.
func ToJSON(inv Invoice) ([]byte, error) {
	doc := invoiceDoc{
		Company: companyDoc{
			Name:      inv.Company.Name,
			Address:   inv.Company.Address,
			GSTNumber: inv.Company.GSTNumber,
			Email:     inv.Company.Email,
			Phone:     inv.Company.Phone,
		},
		Customer: customerDoc{
			Name:    inv.Customer.Name,
			Address: inv.Customer.Address,
			Email:   inv.Customer.Email,
			Phone:   inv.Customer.Phone,
		},
		Items:         make([]itemDoc, 0, len(inv.Items)),
		InvoiceNumber: inv.InvoiceNumber,
		Currency:      &inv.Currency,
		Notes:         inv.Notes,
		AuthorizedBy:  inv.AuthorizedBy,
	}

	date := inv.InvoiceDate.Format(DateLayout)
	doc.InvoiceDate = &date
	if inv.DueDate != nil {
		due := inv.DueDate.Format(DateLayout)
		doc.DueDate = &due
	}

	for _, it := range inv.Items {
		doc.Items = append(doc.Items, itemDoc{
			Description: it.Description,
			Quantity:    rawDecimal(it.Quantity),
			UnitPrice:   rawDecimal(it.UnitPrice),
			TaxRate:     rawDecimal(it.TaxRate),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode invoice document: %w", err)
	}
	return data, nil
}

// FromJSON decodes an invoice document. Missing optional fields default
// (absent company/customer become empty parties, absent invoice_date
// becomes today, absent currency becomes EUR). Malformed decimal or
// date text fails the whole load with a DecodeError naming the field.
func FromJSON(data []byte) (Invoice, error) {
	var doc invoiceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Invoice{}, NewDecodeError("document", "", fmt.Errorf("%w: %v", ErrMalformedDocument, err))
	}

	inv := Invoice{
		Company: Company{
			Name:      doc.Company.Name,
			Address:   doc.Company.Address,
			GSTNumber: doc.Company.GSTNumber,
			Email:     doc.Company.Email,
			Phone:     doc.Company.Phone,
		},
		Customer: Customer{
			Name:    doc.Customer.Name,
			Address: doc.Customer.Address,
			Email:   doc.Customer.Email,
			Phone:   doc.Customer.Phone,
		},
		InvoiceNumber: doc.InvoiceNumber,
		Currency:      DefaultCurrency,
		Notes:         doc.Notes,
		AuthorizedBy:  doc.AuthorizedBy,
	}
	if doc.Currency != nil {
		inv.Currency = *doc.Currency
	}

	inv.InvoiceDate = Today()
	if doc.InvoiceDate != nil {
		date, err := time.Parse(DateLayout, *doc.InvoiceDate)
		if err != nil {
			return Invoice{}, NewDecodeError("invoice_date", *doc.InvoiceDate, ErrBadDateText)
		}
		inv.InvoiceDate = date
	}
	if doc.DueDate != nil && *doc.DueDate != "" {
		due, err := time.Parse(DateLayout, *doc.DueDate)
		if err != nil {
			return Invoice{}, NewDecodeError("due_date", *doc.DueDate, ErrBadDateText)
		}
		inv.DueDate = &due
	}

	inv.Items = make([]Item, 0, len(doc.Items))
	for i, it := range doc.Items {
		qty, err := decodeDecimalField(it.Quantity, fmt.Sprintf("items[%d].quantity", i))
		if err != nil {
			return Invoice{}, err
		}
		price, err := decodeDecimalField(it.UnitPrice, fmt.Sprintf("items[%d].unit_price", i))
		if err != nil {
			return Invoice{}, err
		}
		rate, err := decodeDecimalField(it.TaxRate, fmt.Sprintf("items[%d].tax_rate", i))
		if err != nil {
			return Invoice{}, err
		}
		inv.Items = append(inv.Items, Item{
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   price,
			TaxRate:     rate,
		})
	}

	return inv, nil
}

// rawDecimal renders d as a quoted JSON string carrying its exact
// canonical text.
func rawDecimal(d decimal.Decimal) json.RawMessage {
	return json.RawMessage(strconv.Quote(d.String()))
}

// decodeDecimalField accepts either a JSON string or a bare JSON number
// and parses it as an exact decimal; a missing field defaults to zero.
func decodeDecimalField(raw json.RawMessage, field string) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Decimal{}, NewDecodeError(field, string(raw), ErrBadDecimalText)
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, NewDecodeError(field, text, ErrBadDecimalText)
	}
	return d, nil
}
