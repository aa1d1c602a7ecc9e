package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor is a supplier of goods or services. Vendors flagged RCMApplicable
// shift the GST liability to us (reverse charge).
type Vendor struct {
	VendorID      string `json:"vendorID"` // Primary Key (UUID)
	Name          string `json:"name"`
	GSTIN         string `json:"gstin,omitempty"` // Empty for unregistered vendors
	StateCode     string `json:"stateCode"`       // Two-digit GST state code
	RCMApplicable bool   `json:"rcmApplicable"`
	AuditFields
}

// ExpenseRecord is the raw source row behind an expense event. It feeds the
// RCM/ITC registers and GSTR-2B reconciliation independently of the posted
// journal.
type ExpenseRecord struct {
	ExpenseID      string          `json:"expenseID"` // Primary Key (UUID)
	BillNo         string          `json:"billNo"`
	BillDate       time.Time       `json:"billDate"`
	VendorID       string          `json:"vendorID,omitempty"`
	VendorName     string          `json:"vendorName"`
	VendorGSTIN    string          `json:"vendorGSTIN,omitempty"`
	VendorState    string          `json:"vendorState"`
	Category       string          `json:"category"` // Maps to an expense ledger account
	TaxableValue   decimal.Decimal `json:"taxableValue"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	RCMApplicable  bool            `json:"rcmApplicable"`
	ITCEligible    bool            `json:"itcEligible"`
	PaidImmediately bool           `json:"paidImmediately"` // Cash/Bank vs Accounts Payable
	AuditFields
}

// PurchaseRecord is the raw source row behind a purchase-receipt event.
type PurchaseRecord struct {
	PurchaseID   string          `json:"purchaseID"` // Primary Key (UUID)
	BillNo       string          `json:"billNo"`
	BillDate     time.Time       `json:"billDate"`
	VendorID     string          `json:"vendorID"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	ITCEligible  bool            `json:"itcEligible"`
	AuditFields
}

// PurchaseWithVendor is a purchase row joined with its vendor, as the
// register reads need supplier details alongside the amounts.
type PurchaseWithVendor struct {
	Purchase PurchaseRecord `json:"purchase"`
	Vendor   Vendor         `json:"vendor"`
}

// InvoiceRecord is the flattened internal view of a purchase or expense used
// for GSTR-2B matching: one row per inward supply, keyed by bill number.
type InvoiceRecord struct {
	SourceType   SourceType      `json:"sourceType"` // EXPENSE or PURCHASE
	SourceID     string          `json:"sourceID"`
	BillNo       string          `json:"billNo"`
	VendorName   string          `json:"vendorName"`
	VendorGSTIN  string          `json:"vendorGSTIN,omitempty"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
}
