package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// CheckoutEventRequest is the payload the booking module sends on guest checkout.
type CheckoutEventRequest struct {
	BookingID      string          `json:"bookingID" binding:"required"`
	CheckoutAt     time.Time       `json:"checkoutAt"`
	GuestName      string          `json:"guestName"`
	RoomCharge     decimal.Decimal `json:"roomCharge"`
	FoodCharge     decimal.Decimal `json:"foodCharge"`
	ServiceCharge  decimal.Decimal `json:"serviceCharge"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	AdvanceApplied decimal.Decimal `json:"advanceApplied"`
}

// ToDomain maps the request to its domain event, defaulting the checkout
// time to now when absent.
func (r CheckoutEventRequest) ToDomain() domain.CheckoutEvent {
	ev := domain.CheckoutEvent{
		BookingID:      r.BookingID,
		CheckoutAt:     r.CheckoutAt,
		GuestName:      r.GuestName,
		RoomCharge:     r.RoomCharge,
		FoodCharge:     r.FoodCharge,
		ServiceCharge:  r.ServiceCharge,
		TaxAmount:      r.TaxAmount,
		AdvanceApplied: r.AdvanceApplied,
	}
	if ev.CheckoutAt.IsZero() {
		ev.CheckoutAt = time.Now().UTC()
	}
	return ev
}

// FoodOrderEventRequest is the payload the food-order module sends on payment
// confirmation. Total is tax-inclusive.
type FoodOrderEventRequest struct {
	OrderID string          `json:"orderID" binding:"required"`
	PaidAt  time.Time       `json:"paidAt"`
	Total   decimal.Decimal `json:"total"`
	TaxRate decimal.Decimal `json:"taxRate"`
}

func (r FoodOrderEventRequest) ToDomain() domain.FoodOrderEvent {
	ev := domain.FoodOrderEvent{
		OrderID: r.OrderID,
		PaidAt:  r.PaidAt,
		Total:   r.Total,
		TaxRate: r.TaxRate,
	}
	if ev.PaidAt.IsZero() {
		ev.PaidAt = time.Now().UTC()
	}
	return ev
}

// ExpenseEventRequest is the payload sent when an expense is recorded.
type ExpenseEventRequest struct {
	ExpenseID       string          `json:"expenseID" binding:"required"`
	BillNo          string          `json:"billNo" binding:"required"`
	BillDate        time.Time       `json:"billDate"`
	VendorName      string          `json:"vendorName" binding:"required"`
	VendorGSTIN     string          `json:"vendorGSTIN"`
	VendorState     string          `json:"vendorState" binding:"required"`
	Category        string          `json:"category"`
	TaxableValue    decimal.Decimal `json:"taxableValue"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	RCMApplicable   bool            `json:"rcmApplicable"`
	ITCEligible     bool            `json:"itcEligible"`
	PaidImmediately bool            `json:"paidImmediately"`
}

func (r ExpenseEventRequest) ToDomain() domain.ExpenseEvent {
	ev := domain.ExpenseEvent{
		ExpenseID:       r.ExpenseID,
		BillNo:          r.BillNo,
		BillDate:        r.BillDate,
		VendorName:      r.VendorName,
		VendorGSTIN:     r.VendorGSTIN,
		VendorState:     r.VendorState,
		Category:        r.Category,
		TaxableValue:    r.TaxableValue,
		TaxRate:         r.TaxRate,
		RCMApplicable:   r.RCMApplicable,
		ITCEligible:     r.ITCEligible,
		PaidImmediately: r.PaidImmediately,
	}
	if ev.BillDate.IsZero() {
		ev.BillDate = time.Now().UTC()
	}
	if ev.Category == "" {
		ev.Category = domain.AccountGeneralExpenses
	}
	return ev
}

// PurchaseEventRequest is the payload the inventory module sends on receipt
// of purchased stock.
type PurchaseEventRequest struct {
	PurchaseID   string          `json:"purchaseID" binding:"required"`
	BillNo       string          `json:"billNo" binding:"required"`
	BillDate     time.Time       `json:"billDate"`
	VendorID     string          `json:"vendorID" binding:"required"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	ITCEligible  bool            `json:"itcEligible"`
}

func (r PurchaseEventRequest) ToDomain() domain.PurchaseEvent {
	ev := domain.PurchaseEvent{
		PurchaseID:   r.PurchaseID,
		BillNo:       r.BillNo,
		BillDate:     r.BillDate,
		VendorID:     r.VendorID,
		TaxableValue: r.TaxableValue,
		TaxRate:      r.TaxRate,
		ITCEligible:  r.ITCEligible,
	}
	if ev.BillDate.IsZero() {
		ev.BillDate = time.Now().UTC()
	}
	return ev
}

// CreateVendorRequest defines the payload for registering a vendor.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	GSTIN         string `json:"gstin"`
	StateCode     string `json:"stateCode" binding:"required"`
	RCMApplicable bool   `json:"rcmApplicable"`
}
