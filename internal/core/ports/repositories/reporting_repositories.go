package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AccountTotals holds the summed debit and credit activity of one account
// over a period.
type AccountTotals struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// ReportingRepository defines read-only aggregate queries over posted
// journal lines. Reads run under read-committed isolation and may execute
// concurrently with postings; they never observe a partially written entry.
type ReportingRepository interface {
	// GetAccountTotals sums debit and credit activity per account name for
	// journals posted within [from, to] (either bound optional). Accounts
	// with no activity are absent from the map.
	GetAccountTotals(ctx context.Context, accountNames []string, from, to *time.Time) (map[string]AccountTotals, error)
}
