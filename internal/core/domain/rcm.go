package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RCMRecord is a read-model row of the reverse-charge register, assembled on
// demand from an expense or purchase whose supplier is RCM-flagged. It is
// never stored as a durable entity.
type RCMRecord struct {
	SelfInvoiceNo  string          `json:"selfInvoiceNo"`
	LiabilityDate  time.Time       `json:"liabilityDate"`
	Supplier       string          `json:"supplier"`
	SupplierGSTIN  string          `json:"supplierGSTIN,omitempty"`
	NatureOfSupply string          `json:"natureOfSupply"`
	OriginalBillNo string          `json:"originalBillNo"`
	TaxableValue   decimal.Decimal `json:"taxableValue"`
	Rate           decimal.Decimal `json:"rate"`
	TaxLiability   decimal.Decimal `json:"taxLiability"`
	IGST           decimal.Decimal `json:"igst"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	ITCEligible    bool            `json:"itcEligible"`
	SourceType     SourceType      `json:"sourceType"`
	SourceID       string          `json:"sourceID"`
	PlaceOfSupply  string          `json:"placeOfSupply"`
}

// RCMSummary aggregates a filtered RCM register.
type RCMSummary struct {
	TotalRecords      int             `json:"totalRecords"`
	TotalTaxableValue decimal.Decimal `json:"totalTaxableValue"`
	TotalTaxLiability decimal.Decimal `json:"totalTaxLiability"`
	TotalIGST         decimal.Decimal `json:"totalIGST"`
	TotalCGST         decimal.Decimal `json:"totalCGST"`
	TotalSGST         decimal.Decimal `json:"totalSGST"`
}

// ITCRecord is a read-model row of the input-tax-credit register.
type ITCRecord struct {
	BillNo       string          `json:"billNo"`
	BillDate     time.Time       `json:"billDate"`
	Supplier     string          `json:"supplier"`
	SupplierGSTIN string         `json:"supplierGSTIN,omitempty"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	Rate         decimal.Decimal `json:"rate"`
	IGST         decimal.Decimal `json:"igst"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	ViaRCM       bool            `json:"viaRCM"`
	SourceType   SourceType      `json:"sourceType"`
	SourceID     string          `json:"sourceID"`
}

// MasterSummary is the top-level GST position over a period: tax collected on
// outward supplies, credit available on inward supplies and the reverse-charge
// liability, all read from posted ledger lines.
type MasterSummary struct {
	OutputTax    decimal.Decimal `json:"outputTax"`
	ITCAvailable decimal.Decimal `json:"itcAvailable"`
	RCMLiability decimal.Decimal `json:"rcmLiability"`
	NetPayable   decimal.Decimal `json:"netPayable"`
}
