package dto

import (
	"github.com/shopspring/decimal"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// ExternalInvoiceRequest is one uploaded GSTR-2B row. Amounts arrive as raw
// strings so a malformed value rejects only its own row instead of failing
// the whole JSON bind.
type ExternalInvoiceRequest struct {
	InvoiceNo    string `json:"invoiceNo"`
	GSTIN        string `json:"gstin"`
	TaxableValue string `json:"taxableValue"`
	TaxAmount    string `json:"taxAmount"`
}

// ReconcileRequest is the JSON body of a reconciliation run.
type ReconcileRequest struct {
	Invoices []ExternalInvoiceRequest `json:"invoices" binding:"required"`
}

// ReconciliationResult partitions every internal and external record into
// exactly one bucket.
type ReconciliationResult struct {
	Matched           []domain.ReconciliationMatch `json:"matched"`
	Mismatched        []domain.ReconciliationMatch `json:"mismatched"`
	MissingInBooks    []domain.ReconciliationMatch `json:"missing_in_books"`
	MissingInExternal []domain.ReconciliationMatch `json:"missing_in_external"`
	Rejected          []domain.RejectedInvoice     `json:"rejected,omitempty"`
}

// ParseExternalInvoice validates one uploaded row into a typed invoice.
// The returned reason is non-empty when the row must be rejected.
func ParseExternalInvoice(r ExternalInvoiceRequest) (domain.ExternalInvoice, string) {
	if r.InvoiceNo == "" {
		return domain.ExternalInvoice{}, "missing invoice number"
	}
	taxable, err := decimal.NewFromString(r.TaxableValue)
	if err != nil {
		return domain.ExternalInvoice{InvoiceNo: r.InvoiceNo, GSTIN: r.GSTIN}, "non-numeric taxable value"
	}
	tax, err := decimal.NewFromString(r.TaxAmount)
	if err != nil {
		return domain.ExternalInvoice{InvoiceNo: r.InvoiceNo, GSTIN: r.GSTIN}, "non-numeric tax amount"
	}
	return domain.ExternalInvoice{
		InvoiceNo:    r.InvoiceNo,
		GSTIN:        r.GSTIN,
		TaxableValue: taxable,
		TaxAmount:    tax,
	}, ""
}
