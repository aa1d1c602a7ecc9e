package gstr2b

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseB2BSheet(t *testing.T) {
	buf := buildWorkbook(t, SheetName, [][]interface{}{
		{"GSTIN", "Invoice No", "Taxable Value", "Tax Amount"},
		{"29ABCDE1234F1Z5", "INV-001", "1000.00", "180.00"},
		{"27FGHIJ5678K2Z3", "INV-002", "2500.50", "450.09"},
	})

	rows, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "29ABCDE1234F1Z5", rows[0].GSTIN)
	assert.Equal(t, "INV-001", rows[0].InvoiceNo)
	assert.Equal(t, "1000.00", rows[0].TaxableValue)
	assert.Equal(t, "180.00", rows[0].TaxAmount)
	assert.Equal(t, "INV-002", rows[1].InvoiceNo)
}

func TestParseFallsBackToFirstSheet(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"GSTIN", "Invoice No", "Taxable Value", "Tax Amount"},
		{"29ABCDE1234F1Z5", "INV-010", "500", "25"},
	})

	rows, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "INV-010", rows[0].InvoiceNo)
}

func TestParseSkipsEmptyRowsAndKeepsMalformed(t *testing.T) {
	buf := buildWorkbook(t, SheetName, [][]interface{}{
		{"GSTIN", "Invoice No", "Taxable Value", "Tax Amount"},
		{"", "", "", ""},
		{"29ABCDE1234F1Z5", "INV-003", "not-a-number", "18"},
	})

	rows, err := Parse(buf)
	require.NoError(t, err)
	// Malformed amounts survive parsing; the reconciliation run rejects them
	// row by row with a reason.
	require.Len(t, rows, 1)
	assert.Equal(t, "not-a-number", rows[0].TaxableValue)
}

func TestParseRejectsGarbageInput(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("this is not an xlsx file")))
	assert.Error(t, err)
}
