// Package pdf renders a finished invoice value into an A4 PDF
// document. It is a read-only consumer of the domain model: the totals
// it prints are the model's derived totals, computed at render time.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
)

const (
	pageMargin = 18.0 // mm
	topMargin  = 20.0 // mm
)

// Renderer draws invoices with gofpdf using the built-in core fonts.
type Renderer struct {
	log zerolog.Logger
}

// NewRenderer creates a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		log: logger.WithComponent("pdf"),
	}
}

// Render writes inv as a PDF to outputPath, creating the parent
// directory when needed.
func (r *Renderer) Render(inv invoice.Invoice, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, topMargin, pageMargin)
	pdf.SetAutoPageBreak(true, topMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	usableW := pageW - 2*pageMargin

	r.drawHeader(pdf, tr, inv, pageW, usableW)
	r.drawBillTo(pdf, tr, inv)
	r.drawItems(pdf, tr, inv, usableW)
	r.drawTotals(pdf, tr, inv, pageW)
	r.drawFooter(pdf, tr, inv, usableW)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}

	r.log.Info().
		Str("path", outputPath).
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Str("grand_total", invoice.FormatCurrency(inv.GrandTotal(), inv.Currency)).
		Msg("Invoice PDF written")

	return nil
}

// drawHeader draws the INVOICE title with the company block on the
// left and the invoice metadata block on the right.
func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, inv invoice.Invoice, pageW, usableW float64) {
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	companyW := usableW * 0.62
	metaX := pageMargin + companyW + 4
	metaW := usableW - companyW - 4

	top := pdf.GetY()

	pdf.SetFont("Arial", "B", 11)
	pdf.MultiCell(companyW, 5.5, tr(inv.Company.Name), "", "L", false)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(companyW, 5, tr(inv.Company.Address), "", "L", false)
	pdf.MultiCell(companyW, 5, tr("GST/VAT: "+inv.Company.GSTNumber), "", "L", false)
	pdf.MultiCell(companyW, 5, tr(contactLine(inv.Company.Email, inv.Company.Phone)), "", "L", false)
	companyBottom := pdf.GetY()

	pdf.SetXY(metaX, top)
	meta := []string{
		"Invoice #: " + orDash(inv.InvoiceNumber),
		"Date: " + inv.InvoiceDate.Format(invoice.DateLayout),
		"Due: " + dueText(inv),
		"Currency: " + inv.Currency,
	}
	for _, line := range meta {
		pdf.SetX(metaX)
		pdf.CellFormat(metaW, 5.5, tr(line), "", 1, "L", false, 0, "")
	}
	metaBottom := pdf.GetY()

	if companyBottom > metaBottom {
		pdf.SetY(companyBottom)
	} else {
		pdf.SetY(metaBottom)
	}
	pdf.Ln(3)

	y := pdf.GetY()
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(pageMargin, y, pageW-pageMargin, y)
	pdf.Ln(4)
}

func (r *Renderer) drawBillTo(pdf *gofpdf.Fpdf, tr func(string) string, inv invoice.Invoice) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 5.5, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(inv.Customer.Name), "", "L", false)
	pdf.MultiCell(0, 5, tr(inv.Customer.Address), "", "L", false)
	pdf.MultiCell(0, 5, tr(contactLine(inv.Customer.Email, inv.Customer.Phone)), "", "L", false)
	pdf.Ln(4)
}

func (r *Renderer) drawItems(pdf *gofpdf.Fpdf, tr func(string) string, inv invoice.Invoice, usableW float64) {
	headers := []string{"Description", "Qty", "Unit Price", "Tax %", "Line Total"}
	widths := []float64{usableW - 100, 20, 30, 20, 30}
	aligns := []string{"L", "R", "R", "R", "R"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(224, 224, 224)
	pdf.SetDrawColor(128, 128, 128)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, it := range inv.Items {
		row := []string{
			it.Description,
			it.Quantity.String(),
			invoice.FormatCurrency(it.UnitPrice, inv.Currency),
			it.TaxRate.String() + "%",
			invoice.FormatCurrency(it.Total(), inv.Currency),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(5)
}

func (r *Renderer) drawTotals(pdf *gofpdf.Fpdf, tr func(string) string, inv invoice.Invoice, pageW float64) {
	const labelW, valueW = 40.0, 30.0
	x := pageW - pageMargin - labelW - valueW

	rows := []struct {
		label string
		value string
		fill  bool
	}{
		{"Subtotal", invoice.FormatCurrency(inv.Subtotal(), inv.Currency), false},
		{"Tax", invoice.FormatCurrency(inv.TaxTotal(), inv.Currency), false},
		{"Total", invoice.FormatCurrency(inv.GrandTotal(), inv.Currency), true},
	}

	pdf.SetFillColor(240, 240, 240)
	for _, row := range rows {
		pdf.SetX(x)
		if row.fill {
			pdf.SetFont("Arial", "B", 10)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(labelW, 7, row.label, "1", 0, "R", row.fill, 0, "")
		pdf.CellFormat(valueW, 7, tr(row.value), "1", 1, "R", row.fill, 0, "")
	}
}

func (r *Renderer) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, inv invoice.Invoice, usableW float64) {
	if invoice.NonEmpty(inv.Notes) {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 5.5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(usableW, 4.5, tr(inv.Notes), "", "L", false)
	}

	if invoice.NonEmpty(inv.AuthorizedBy) {
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 10)
		pdf.Write(5, "Authorized by: ")
		pdf.SetFont("Arial", "B", 10)
		pdf.Write(5, tr(inv.AuthorizedBy))
	}
}

func contactLine(email, phone string) string {
	return email + " | " + phone
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dueText(inv invoice.Invoice) string {
	if inv.DueDate == nil {
		return "-"
	}
	return inv.DueDate.Format(invoice.DateLayout)
}
