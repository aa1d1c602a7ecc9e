package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
)

type reportingRepository struct {
	pool *pgxpool.Pool
}

// NewReportingRepository creates a read-only repository for ledger aggregates.
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountTotals sums the debit and credit activity of each named account
// over journals posted within [from, to]. Journal inserts are atomic, so a
// concurrent posting is either fully included or fully absent from the sums.
func (r *reportingRepository) GetAccountTotals(ctx context.Context, accountNames []string, from, to *time.Time) (map[string]portsrepo.AccountTotals, error) {
	if len(accountNames) == 0 {
		return map[string]portsrepo.AccountTotals{}, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT a.name, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journals j ON j.journal_id = l.journal_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE a.name = ANY($1)
	`)
	args := []any{accountNames}
	if from != nil {
		args = append(args, *from)
		sb.WriteString(fmt.Sprintf(" AND j.posted_at >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		sb.WriteString(fmt.Sprintf(" AND j.posted_at <= $%d", len(args)))
	}
	sb.WriteString(" GROUP BY a.name;")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]portsrepo.AccountTotals, len(accountNames))
	for rows.Next() {
		var name string
		var debits, credits decimal.Decimal
		if err := rows.Scan(&name, &debits, &credits); err != nil {
			return nil, fmt.Errorf("failed to scan account totals row: %w", err)
		}
		totals[name] = portsrepo.AccountTotals{Debits: debits, Credits: credits}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}
	return totals, nil
}
