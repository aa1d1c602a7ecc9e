package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the kind of business event that produced a journal.
type SourceType string

const (
	SourceCheckout  SourceType = "CHECKOUT"
	SourceFoodOrder SourceType = "FOOD_ORDER"
	SourceExpense   SourceType = "EXPENSE"
	SourcePurchase  SourceType = "PURCHASE"
	SourceReversal  SourceType = "REVERSAL"
	SourceManual    SourceType = "MANUAL"
)

// Journal represents a single, balanced financial event composed of multiple lines.
// Journals are append-only: once posted they are never edited or deleted;
// corrections are made by posting a reversing journal.
// (SourceType, SourceID) is unique and serves as the idempotency key.
type Journal struct {
	JournalID  string        `json:"journalID"` // Primary Key (UUID)
	PostedAt   time.Time     `json:"postedAt"`  // Ledger date of the event
	Narration  string        `json:"narration"`
	SourceType SourceType    `json:"sourceType"`
	SourceID   string        `json:"sourceID"`
	Lines      []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine represents a single debit or credit within a journal,
// affecting one account. Exactly one of Debit/Credit is nonzero.
type JournalLine struct {
	LineID    string          `json:"lineID"`    // Primary Key (UUID)
	JournalID string          `json:"journalID"` // FK -> Journal.journalID
	AccountID string          `json:"accountID"` // FK -> Account.accountID
	Debit     decimal.Decimal `json:"debit"`     // >= 0
	Credit    decimal.Decimal `json:"credit"`    // >= 0
}

// IsDebit reports whether the line carries a debit amount.
func (l JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount returns the nonzero side of the line.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}
