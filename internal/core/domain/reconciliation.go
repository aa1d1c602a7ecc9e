package domain

import "github.com/shopspring/decimal"

// MatchStatus classifies one record of a reconciliation run.
type MatchStatus string

const (
	Matched           MatchStatus = "MATCHED"
	Mismatched        MatchStatus = "MISMATCHED"
	MissingInBooks    MatchStatus = "MISSING_IN_BOOKS"
	MissingInExternal MatchStatus = "MISSING_IN_EXTERNAL"
)

// ExternalInvoice is one row of the tax authority's GSTR-2B record, supplied
// by upload. Parsing the upload happens upstream of the matcher.
type ExternalInvoice struct {
	InvoiceNo    string          `json:"invoiceNo"`
	GSTIN        string          `json:"gstin"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
}

// ReconciliationMatch pairs an internal record with its external counterpart
// (either side may be absent) and the resulting status. Matches are produced
// transiently per run and never persisted by the core.
type ReconciliationMatch struct {
	Internal       *InvoiceRecord   `json:"internal,omitempty"`
	External       *ExternalInvoice `json:"external,omitempty"`
	Status         MatchStatus      `json:"status"`
	VarianceAmount decimal.Decimal  `json:"varianceAmount"` // external - internal
}

// RejectedInvoice is an external row the matcher could not process; it never
// aborts the batch.
type RejectedInvoice struct {
	External ExternalInvoice `json:"external"`
	Reason   string          `json:"reason"`
}
