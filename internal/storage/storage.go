// Package storage persists invoices as JSON documents and derives the
// output paths for emitted PDFs. All paths are resolved against an
// explicit base directory handed to the Store, never against ambient
// process state.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
)

// Store reads and writes invoice files under one base directory, which
// is created on demand.
type Store struct {
	dir string
	log zerolog.Logger
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
		log: logger.WithComponent("storage"),
	}
}

// Dir returns the store's base directory.
func (s *Store) Dir() string {
	return s.dir
}

// JSONPath returns the JSON path for an invoice number, synthesizing a
// timestamp-derived name when the number is empty.
func (s *Store) JSONPath(invoiceNumber string) string {
	return filepath.Join(s.dir, fileName(invoiceNumber)+".json")
}

// PDFPath returns the PDF path for an invoice number, synthesizing a
// timestamp-derived name when the number is empty.
func (s *Store) PDFPath(invoiceNumber string) string {
	return filepath.Join(s.dir, fileName(invoiceNumber)+".pdf")
}

// SaveJSON writes inv as a JSON document. An empty path means "derive
// the path from the invoice number". The written path is returned.
func (s *Store) SaveJSON(inv invoice.Invoice, path string) (string, error) {
	if path == "" {
		path = s.JSONPath(inv.InvoiceNumber)
	}

	data, err := invoice.ToJSON(inv)
	if err != nil {
		return "", fmt.Errorf("encode invoice: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create invoices directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write invoice file: %w", err)
	}

	s.log.Info().
		Str("path", path).
		Str("invoice_number", inv.InvoiceNumber).
		Int("bytes", len(data)).
		Msg("Invoice JSON written")

	return path, nil
}

// LoadJSON reads and decodes the invoice document at path. Decode
// failures are load-fatal: no partial invoice is returned.
func (s *Store) LoadJSON(path string) (invoice.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("read invoice file: %w", err)
	}

	inv, err := invoice.FromJSON(data)
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("load %s: %w", path, err)
	}

	s.log.Debug().
		Str("path", path).
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Msg("Invoice JSON loaded")

	return inv, nil
}

func fileName(invoiceNumber string) string {
	if invoiceNumber == "" {
		return "invoice-" + time.Now().Format("20060102-150405")
	}
	return invoiceNumber
}
