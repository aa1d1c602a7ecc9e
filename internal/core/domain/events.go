package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceEvent is the closed set of business events the surrounding modules
// emit into the accounting core. Each variant carries everything its
// translator needs to build a balanced journal draft; dispatch is an explicit
// type switch, never reflection.
type SourceEvent interface {
	// SourceRef returns the idempotency key for the event.
	SourceRef() (SourceType, string)
}

// CheckoutEvent is emitted when a guest settles their final bill.
// TaxAmount is the GST already computed on the bill; AdvanceApplied is the
// portion previously collected and held under Advance from Customers.
type CheckoutEvent struct {
	BookingID      string          `json:"bookingID"`
	CheckoutAt     time.Time       `json:"checkoutAt"`
	GuestName      string          `json:"guestName"`
	RoomCharge     decimal.Decimal `json:"roomCharge"`
	FoodCharge     decimal.Decimal `json:"foodCharge"`
	ServiceCharge  decimal.Decimal `json:"serviceCharge"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	AdvanceApplied decimal.Decimal `json:"advanceApplied"`
}

func (e CheckoutEvent) SourceRef() (SourceType, string) { return SourceCheckout, e.BookingID }

// FoodOrderEvent is emitted when a standalone food order's payment is
// confirmed. Total is tax-inclusive; the translator back-calculates the base.
type FoodOrderEvent struct {
	OrderID string          `json:"orderID"`
	PaidAt  time.Time       `json:"paidAt"`
	Total   decimal.Decimal `json:"total"` // Inclusive of GST
	TaxRate decimal.Decimal `json:"taxRate"`
}

func (e FoodOrderEvent) SourceRef() (SourceType, string) { return SourceFoodOrder, e.OrderID }

// ExpenseEvent is emitted when an expense is recorded.
type ExpenseEvent struct {
	ExpenseID       string          `json:"expenseID"`
	BillNo          string          `json:"billNo"`
	BillDate        time.Time       `json:"billDate"`
	VendorName      string          `json:"vendorName"`
	VendorGSTIN     string          `json:"vendorGSTIN,omitempty"`
	VendorState     string          `json:"vendorState"`
	Category        string          `json:"category"` // Expense ledger account name
	TaxableValue    decimal.Decimal `json:"taxableValue"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	RCMApplicable   bool            `json:"rcmApplicable"`
	ITCEligible     bool            `json:"itcEligible"`
	PaidImmediately bool            `json:"paidImmediately"`
}

func (e ExpenseEvent) SourceRef() (SourceType, string) { return SourceExpense, e.ExpenseID }

// PurchaseEvent is emitted on receipt of purchased stock. RCM handling
// follows the vendor's flag, resolved by the translator.
type PurchaseEvent struct {
	PurchaseID   string          `json:"purchaseID"`
	BillNo       string          `json:"billNo"`
	BillDate     time.Time       `json:"billDate"`
	VendorID     string          `json:"vendorID"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	ITCEligible  bool            `json:"itcEligible"`
}

func (e PurchaseEvent) SourceRef() (SourceType, string) { return SourcePurchase, e.PurchaseID }
