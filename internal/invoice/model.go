// Package invoice holds the invoice domain model and its monetary
// arithmetic.
//
// All monetary fields are exact base-10 decimals (shopspring/decimal);
// binary floating point is never used because it would corrupt totals.
// Derived amounts (line subtotal/tax/total and the invoice aggregates)
// are pure functions of the stored fields, recomputed on every call and
// never cached, so they cannot go stale after an item edit.
//
// Rounding is always two fractional digits, ties away from zero.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when an invoice or a loaded document does not
// name a currency.
const DefaultCurrency = "EUR"

// DateLayout is the calendar-date format used everywhere an invoice
// date is rendered or parsed (ISO-8601, date only).
const DateLayout = "2006-01-02"

// Company is the issuing party printed in the invoice header.
type Company struct {
	Name      string
	Address   string
	GSTNumber string
	Email     string
	Phone     string
}

// Customer is the billed party.
type Customer struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// Item is one billable line: a quantity of something at a unit price,
// taxed at a percentage rate (9 means 9%).
type Item struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

// Subtotal returns quantity x unit price, rounded to money.
func (it Item) Subtotal() decimal.Decimal {
	return RoundMoney(it.Quantity.Mul(it.UnitPrice))
}

// TaxAmount returns the tax due on the line subtotal.
func (it Item) TaxAmount() decimal.Decimal {
	// Shift(-2) divides by 100 exactly, no division rounding.
	return RoundMoney(it.Subtotal().Mul(it.TaxRate).Shift(-2))
}

// Total returns subtotal plus tax, rounded to money.
func (it Item) Total() decimal.Decimal {
	return RoundMoney(it.Subtotal().Add(it.TaxAmount()))
}

// Invoice is the aggregate root: one company bills one customer for an
// ordered list of items. Item order is display order; duplicates are
// allowed. Mutation is wholesale field replacement only.
type Invoice struct {
	Company       Company
	Customer      Customer
	Items         []Item
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       *time.Time
	Currency      string
	Notes         string
	AuthorizedBy  string
}

// NewInvoice returns an invoice dated today in the default currency.
func NewInvoice(company Company, customer Customer) Invoice {
	return Invoice{
		Company:     company,
		Customer:    customer,
		InvoiceDate: Today(),
		Currency:    DefaultCurrency,
	}
}

// Subtotal sums the rounded line subtotals, rounded again to money.
func (inv Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range inv.Items {
		sum = sum.Add(it.Subtotal())
	}
	return RoundMoney(sum)
}

// TaxTotal sums the rounded line tax amounts, rounded again to money.
func (inv Invoice) TaxTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range inv.Items {
		sum = sum.Add(it.TaxAmount())
	}
	return RoundMoney(sum)
}

// GrandTotal returns subtotal plus tax total, rounded to money.
func (inv Invoice) GrandTotal() decimal.Decimal {
	return RoundMoney(inv.Subtotal().Add(inv.TaxTotal()))
}

// Today returns the current calendar date at UTC midnight, the
// canonical representation for invoice dates.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
