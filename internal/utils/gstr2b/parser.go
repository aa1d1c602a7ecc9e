// Package gstr2b reads the B2B invoice sheet of an uploaded GSTR-2B workbook
// into the row format the reconciliation service consumes.
package gstr2b

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/atithihms/hotel_books_app/internal/dto"
)

// SheetName is the worksheet holding B2B invoice rows in a GSTR-2B workbook.
const SheetName = "B2B"

// Column order expected in the B2B sheet. The first row is a header and is
// skipped; amounts stay strings so malformed cells reject per-row downstream.
const (
	colGSTIN = iota
	colInvoiceNo
	colTaxableValue
	colTaxAmount
	minColumns = colTaxAmount + 1
)

// Parse reads an xlsx workbook and returns its B2B rows. A workbook without
// the B2B sheet falls back to the first sheet, since portal exports are often
// re-saved with a default sheet name.
func Parse(r io.Reader) ([]dto.ExternalInvoiceRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := SheetName
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []dto.ExternalInvoiceRequest{}, nil
	}

	invoices := []dto.ExternalInvoiceRequest{}
	for _, row := range rows[1:] { // skip header
		if isEmptyRow(row) {
			continue
		}
		inv := dto.ExternalInvoiceRequest{}
		if len(row) > colGSTIN {
			inv.GSTIN = strings.TrimSpace(row[colGSTIN])
		}
		if len(row) > colInvoiceNo {
			inv.InvoiceNo = strings.TrimSpace(row[colInvoiceNo])
		}
		if len(row) > colTaxableValue {
			inv.TaxableValue = strings.TrimSpace(row[colTaxableValue])
		}
		if len(row) > colTaxAmount {
			inv.TaxAmount = strings.TrimSpace(row[colTaxAmount])
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
