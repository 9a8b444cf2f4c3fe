package invoice

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJSONRoundTrip(t *testing.T) {
	due := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	orig := Invoice{
		Company: Company{
			Name:      "Nordwind Solutions",
			Address:   "Via Roma 1, Roma",
			GSTNumber: "IT12345678901",
			Email:     "info@example.com",
			Phone:     "+39 0123 456789",
		},
		Customer: Customer{
			Name:    "Acme Corp.",
			Address: "123 Business Rd, Paris",
			Email:   "billing@acme.com",
			Phone:   "+33 1 23 45 67 89",
		},
		Items: []Item{
			{Description: "Consulting", Quantity: dec(t, "8"), UnitPrice: dec(t, "120.00"), TaxRate: dec(t, "22")},
			{Description: "Hosting", Quantity: dec(t, "1.5"), UnitPrice: dec(t, "9.99"), TaxRate: dec(t, "0")},
		},
		InvoiceNumber: "INV-2025-042",
		InvoiceDate:   time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC),
		DueDate:       &due,
		Currency:      "EUR",
		Notes:         "Payable within 14 days.\nThank you!",
		AuthorizedBy:  "M. Verdi",
	}

	data, err := ToJSON(orig)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	if got.Company != orig.Company {
		t.Errorf("Company = %+v, want %+v", got.Company, orig.Company)
	}
	if got.Customer != orig.Customer {
		t.Errorf("Customer = %+v, want %+v", got.Customer, orig.Customer)
	}
	if got.InvoiceNumber != orig.InvoiceNumber ||
		got.Currency != orig.Currency ||
		got.Notes != orig.Notes ||
		got.AuthorizedBy != orig.AuthorizedBy {
		t.Errorf("scalar fields differ: %+v", got)
	}
	if !got.InvoiceDate.Equal(orig.InvoiceDate) {
		t.Errorf("InvoiceDate = %v, want %v", got.InvoiceDate, orig.InvoiceDate)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if len(got.Items) != len(orig.Items) {
		t.Fatalf("Items length = %d, want %d", len(got.Items), len(orig.Items))
	}
	for i, it := range got.Items {
		want := orig.Items[i]
		if it.Description != want.Description ||
			it.Quantity.String() != want.Quantity.String() ||
			it.UnitPrice.String() != want.UnitPrice.String() ||
			it.TaxRate.String() != want.TaxRate.String() {
			t.Errorf("item %d = %+v, want %+v", i, it, want)
		}
	}
}

func TestDecimalTextPreservedExactly(t *testing.T) {
	inv := NewInvoice(Company{Name: "c", Address: "a"}, Customer{Name: "u", Address: "a"})
	inv.Items = []Item{
		{Description: "x", Quantity: dec(t, "10.00"), UnitPrice: dec(t, "0.10"), TaxRate: dec(t, "0.0")},
	}

	data, err := ToJSON(inv)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if !strings.Contains(string(data), `"quantity": "10.00"`) {
		t.Errorf("quantity not encoded as exact text:\n%s", data)
	}

	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if s := got.Items[0].Quantity.String(); s != "10.00" {
		t.Errorf("quantity text = %q after round trip, want \"10.00\"", s)
	}
	if s := got.Items[0].TaxRate.String(); s != "0.0" {
		t.Errorf("tax_rate text = %q after round trip, want \"0.0\"", s)
	}
}

func TestFromJSONPermissiveDefaults(t *testing.T) {
	got, err := FromJSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("FromJSON({}): %v", err)
	}
	if got.Company != (Company{}) {
		t.Errorf("Company = %+v, want zero", got.Company)
	}
	if got.Customer != (Customer{}) {
		t.Errorf("Customer = %+v, want zero", got.Customer)
	}
	if got.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", got.Currency, DefaultCurrency)
	}
	if got.InvoiceDate.Format(DateLayout) != Today().Format(DateLayout) {
		t.Errorf("InvoiceDate = %v, want today", got.InvoiceDate)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", got.DueDate)
	}
	if len(got.Items) != 0 {
		t.Errorf("Items = %v, want empty", got.Items)
	}
}

func TestFromJSONAcceptsBareNumbers(t *testing.T) {
	doc := `{"items": [{"description": "x", "quantity": 2, "unit_price": 10.50, "tax_rate": 9}]}`
	got, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	it := got.Items[0]
	if it.Quantity.String() != "2" || it.UnitPrice.String() != "10.50" || it.TaxRate.String() != "9" {
		t.Errorf("item = %+v", it)
	}
	if it.Subtotal().String() != "21.00" {
		t.Errorf("Subtotal = %s, want 21.00", it.Subtotal())
	}
}

func TestFromJSONMissingItemFieldsDefaultToZero(t *testing.T) {
	got, err := FromJSON([]byte(`{"items": [{"description": "x"}]}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	it := got.Items[0]
	if !it.Quantity.IsZero() || !it.UnitPrice.IsZero() || !it.TaxRate.IsZero() {
		t.Errorf("item numerics should default to zero: %+v", it)
	}
}

func TestFromJSONBadDecimalIsFatal(t *testing.T) {
	doc := `{"items": [{"description": "x", "quantity": "oops"}]}`
	_, err := FromJSON([]byte(doc))
	if err == nil {
		t.Fatal("expected error for bad decimal text")
	}
	if !errors.Is(err, ErrBadDecimalText) {
		t.Errorf("error = %v, want ErrBadDecimalText", err)
	}
	if !strings.Contains(err.Error(), "items[0].quantity") {
		t.Errorf("error should name the offending field: %v", err)
	}
}

func TestFromJSONBadDateIsFatal(t *testing.T) {
	for _, doc := range []string{
		`{"invoice_date": "19/10/2025"}`,
		`{"invoice_date": ""}`,
		`{"due_date": "next week"}`,
	} {
		_, err := FromJSON([]byte(doc))
		if err == nil {
			t.Errorf("expected error for %s", doc)
			continue
		}
		if !errors.Is(err, ErrBadDateText) {
			t.Errorf("error for %s = %v, want ErrBadDateText", doc, err)
		}
	}
}

func TestFromJSONNullDueDate(t *testing.T) {
	got, err := FromJSON([]byte(`{"due_date": null}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", got.DueDate)
	}
}

func TestFromJSONMalformedDocument(t *testing.T) {
	_, err := FromJSON([]byte(`{"items": [`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("error = %v, want ErrMalformedDocument", err)
	}
}

func TestSampleRoundTrips(t *testing.T) {
	inv := Sample()
	if err := inv.Validate(); err != nil {
		t.Fatalf("sample invoice invalid: %v", err)
	}
	data, err := ToJSON(inv)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !got.GrandTotal().Equal(inv.GrandTotal()) {
		t.Errorf("GrandTotal = %s after round trip, want %s", got.GrandTotal(), inv.GrandTotal())
	}
}
