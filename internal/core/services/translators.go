package services

import (
	"context"
	"fmt"
	"time"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	"github.com/atithihms/hotel_books_app/internal/core/domain"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/utils/gst"
)

// translate maps a business event to its journal draft. The event set is
// closed; dispatch is an explicit type switch so an unhandled variant is a
// programming error surfaced immediately, not a silent no-op.
func (s *postingService) translate(ctx context.Context, event domain.SourceEvent) (dto.JournalDraft, error) {
	switch ev := event.(type) {
	case domain.CheckoutEvent:
		return s.translateCheckout(ev), nil
	case domain.FoodOrderEvent:
		return s.translateFoodOrder(ev), nil
	case domain.ExpenseEvent:
		return s.translateExpense(ctx, ev)
	case domain.PurchaseEvent:
		return s.translatePurchase(ctx, ev)
	default:
		return dto.JournalDraft{}, fmt.Errorf("%w: unsupported event type %T", apperrors.ErrValidation, event)
	}
}

// translateCheckout builds the settlement entry for a guest checkout: revenue
// and tax are credited at their billed amounts, cash is debited for what was
// actually collected, and any advance previously held under Advance from
// Customers is debited so the entry balances without fabricating revenue.
func (s *postingService) translateCheckout(ev domain.CheckoutEvent) dto.JournalDraft {
	total := ev.RoomCharge.Add(ev.FoodCharge).Add(ev.ServiceCharge).Add(ev.TaxAmount)
	collected := total.Sub(ev.AdvanceApplied)

	return dto.JournalDraft{
		SourceType: domain.SourceCheckout,
		SourceID:   ev.BookingID,
		Narration:  fmt.Sprintf("Guest checkout settlement for booking %s (%s)", ev.BookingID, ev.GuestName),
		Date:       ev.CheckoutAt,
		Lines: []dto.DraftLine{
			{AccountName: domain.AccountCashBank, Debit: collected},
			{AccountName: domain.AccountAdvanceFromCustomers, Debit: ev.AdvanceApplied},
			{AccountName: domain.AccountRoomRevenue, Credit: ev.RoomCharge},
			{AccountName: domain.AccountFoodRevenue, Credit: ev.FoodCharge},
			{AccountName: domain.AccountServiceChargeIncome, Credit: ev.ServiceCharge},
			{AccountName: domain.AccountGSTOutput, Credit: ev.TaxAmount},
		},
	}
}

// translateFoodOrder books a standalone food order on payment confirmation.
// The order total is tax-inclusive and is decomposed before posting.
func (s *postingService) translateFoodOrder(ev domain.FoodOrderEvent) dto.JournalDraft {
	base, tax := gst.BackCalculateFromInclusive(ev.Total, ev.TaxRate)

	return dto.JournalDraft{
		SourceType: domain.SourceFoodOrder,
		SourceID:   ev.OrderID,
		Narration:  fmt.Sprintf("Food order %s payment", ev.OrderID),
		Date:       ev.PaidAt,
		Lines: []dto.DraftLine{
			{AccountName: domain.AccountCashBank, Debit: ev.Total},
			{AccountName: domain.AccountFoodRevenue, Credit: base},
			{AccountName: domain.AccountGSTOutput, Credit: tax},
		},
	}
}

// translateExpense books an expense and records its raw source row. For a
// reverse-charge supply the vendor bills the taxable value only; the tax
// liability is self-assessed into RCM Payable with a matching ITC receivable
// leg when the credit is claimable, otherwise the tax stays in the expense.
func (s *postingService) translateExpense(ctx context.Context, ev domain.ExpenseEvent) (dto.JournalDraft, error) {
	breakup := s.calc.SplitByJurisdiction(ev.TaxableValue, ev.TaxRate, ev.VendorState)
	tax := breakup.TotalTax()

	expenseAccount := ev.Category
	if expenseAccount == "" {
		expenseAccount = domain.AccountGeneralExpenses
	}
	settlementAccount := domain.AccountAccountsPayable
	if ev.PaidImmediately {
		settlementAccount = domain.AccountCashBank
	}

	var lines []dto.DraftLine
	if ev.RCMApplicable {
		lines = []dto.DraftLine{
			{AccountName: expenseAccount, Debit: ev.TaxableValue},
			{AccountName: settlementAccount, Credit: ev.TaxableValue},
		}
		if ev.ITCEligible {
			lines = append(lines, dto.DraftLine{AccountName: domain.AccountInputTaxCredit, Debit: tax})
		} else {
			lines = append(lines, dto.DraftLine{AccountName: expenseAccount, Debit: tax})
		}
		lines = append(lines, dto.DraftLine{AccountName: domain.AccountRCMPayable, Credit: tax})
	} else {
		gross := ev.TaxableValue.Add(tax)
		if ev.ITCEligible {
			lines = []dto.DraftLine{
				{AccountName: expenseAccount, Debit: ev.TaxableValue},
				{AccountName: domain.AccountInputTaxCredit, Debit: tax},
				{AccountName: settlementAccount, Credit: gross},
			}
		} else {
			lines = []dto.DraftLine{
				{AccountName: expenseAccount, Debit: gross},
				{AccountName: settlementAccount, Credit: gross},
			}
		}
	}

	record := domain.ExpenseRecord{
		ExpenseID:       ev.ExpenseID,
		BillNo:          ev.BillNo,
		BillDate:        ev.BillDate,
		VendorName:      ev.VendorName,
		VendorGSTIN:     ev.VendorGSTIN,
		VendorState:     ev.VendorState,
		Category:        expenseAccount,
		TaxableValue:    ev.TaxableValue,
		TaxRate:         ev.TaxRate,
		TaxAmount:       tax,
		RCMApplicable:   ev.RCMApplicable,
		ITCEligible:     ev.ITCEligible,
		PaidImmediately: ev.PaidImmediately,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
		},
	}
	if err := s.sourceRepo.SaveExpense(ctx, record); err != nil {
		return dto.JournalDraft{}, fmt.Errorf("failed to save expense record %s: %w", ev.ExpenseID, err)
	}

	return dto.JournalDraft{
		SourceType: domain.SourceExpense,
		SourceID:   ev.ExpenseID,
		Narration:  fmt.Sprintf("Expense %s - %s", ev.BillNo, ev.VendorName),
		Date:       ev.BillDate,
		Lines:      lines,
	}, nil
}

// translatePurchase books a purchase receipt against inventory. RCM handling
// follows the vendor's flag and mirrors translateExpense.
func (s *postingService) translatePurchase(ctx context.Context, ev domain.PurchaseEvent) (dto.JournalDraft, error) {
	vendor, err := s.sourceRepo.FindVendorByID(ctx, ev.VendorID)
	if err != nil {
		return dto.JournalDraft{}, fmt.Errorf("failed to find vendor %s for purchase %s: %w", ev.VendorID, ev.PurchaseID, err)
	}

	breakup := s.calc.SplitByJurisdiction(ev.TaxableValue, ev.TaxRate, vendor.StateCode)
	tax := breakup.TotalTax()

	var lines []dto.DraftLine
	if vendor.RCMApplicable {
		lines = []dto.DraftLine{
			{AccountName: domain.AccountInventory, Debit: ev.TaxableValue},
			{AccountName: domain.AccountAccountsPayable, Credit: ev.TaxableValue},
		}
		if ev.ITCEligible {
			lines = append(lines, dto.DraftLine{AccountName: domain.AccountInputTaxCredit, Debit: tax})
		} else {
			lines = append(lines, dto.DraftLine{AccountName: domain.AccountInventory, Debit: tax})
		}
		lines = append(lines, dto.DraftLine{AccountName: domain.AccountRCMPayable, Credit: tax})
	} else {
		gross := ev.TaxableValue.Add(tax)
		if ev.ITCEligible {
			lines = []dto.DraftLine{
				{AccountName: domain.AccountInventory, Debit: ev.TaxableValue},
				{AccountName: domain.AccountInputTaxCredit, Debit: tax},
				{AccountName: domain.AccountAccountsPayable, Credit: gross},
			}
		} else {
			lines = []dto.DraftLine{
				{AccountName: domain.AccountInventory, Debit: gross},
				{AccountName: domain.AccountAccountsPayable, Credit: gross},
			}
		}
	}

	record := domain.PurchaseRecord{
		PurchaseID:   ev.PurchaseID,
		BillNo:       ev.BillNo,
		BillDate:     ev.BillDate,
		VendorID:     ev.VendorID,
		TaxableValue: ev.TaxableValue,
		TaxRate:      ev.TaxRate,
		TaxAmount:    tax,
		ITCEligible:  ev.ITCEligible,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
		},
	}
	if err := s.sourceRepo.SavePurchase(ctx, record); err != nil {
		return dto.JournalDraft{}, fmt.Errorf("failed to save purchase record %s: %w", ev.PurchaseID, err)
	}

	return dto.JournalDraft{
		SourceType: domain.SourcePurchase,
		SourceID:   ev.PurchaseID,
		Narration:  fmt.Sprintf("Purchase receipt %s - %s", ev.BillNo, vendor.Name),
		Date:       ev.BillDate,
		Lines:      lines,
	}, nil
}
