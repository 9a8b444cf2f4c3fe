package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"invoicegen/internal/invoice"
)

func TestRenderProducesNonEmptyFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "sample.pdf")

	if err := NewRenderer().Render(invoice.Sample(), out); err != nil {
		t.Fatalf("Render: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("rendered PDF is empty")
	}
}

func TestRenderMinimalInvoice(t *testing.T) {
	inv := invoice.NewInvoice(
		invoice.Company{Name: "c", Address: "a"},
		invoice.Customer{Name: "u", Address: "a"},
	)
	inv.Items = []invoice.Item{
		{Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("9.99"), TaxRate: decimal.NewFromInt(5)},
	}

	out := filepath.Join(t.TempDir(), "minimal.pdf")
	if err := NewRenderer().Render(inv, out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Fatalf("output missing or empty: %v", err)
	}
}
