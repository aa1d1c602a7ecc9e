package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
	"github.com/atithihms/hotel_books_app/internal/utils/pagination"
)

type journalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new repository for journal and line data.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &journalRepository{pool: pool}
}

var _ portsrepo.JournalRepository = (*journalRepository)(nil)

// SaveJournal saves a journal header and its lines within one DB transaction.
// The unique index on (source_type, source_id) arbitrates concurrent postings
// of the same business event: the loser's insert affects zero rows, the whole
// transaction is rolled back and apperrors.ErrDuplicate is returned so the
// caller can re-read the winner's journal.
func (r *journalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	journalQuery := `
		INSERT INTO journals (journal_id, posted_at, narration, source_type, source_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source_type, source_id) DO NOTHING;
	`
	tag, err := tx.Exec(ctx, journalQuery,
		journal.JournalID,
		journal.PostedAt,
		journal.Narration,
		journal.SourceType,
		journal.SourceID,
		journal.CreatedAt,
		journal.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		// Another posting for the same (source_type, source_id) got there first.
		return apperrors.ErrDuplicate
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, journal_id, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range journal.Lines {
		batch.Queue(lineQuery,
			line.LineID,
			line.JournalID,
			line.AccountID,
			line.Debit,
			line.Credit,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute line batch for journal %s: %w", journal.JournalID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for journal %s: %w", journal.JournalID, err)
	}
	return nil
}

// FindJournalByID retrieves a journal header by its ID.
func (r *journalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, posted_at, narration, source_type, source_id, created_at, created_by
		FROM journals
		WHERE journal_id = $1;
	`
	journal, err := scanJournal(r.pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	return journal, nil
}

// FindJournalBySource retrieves the journal posted for a business event.
func (r *journalRepository) FindJournalBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, posted_at, narration, source_type, source_id, created_at, created_by
		FROM journals
		WHERE source_type = $1 AND source_id = $2;
	`
	journal, err := scanJournal(r.pool.QueryRow(ctx, query, sourceType, sourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by source %s/%s: %w", sourceType, sourceID, err)
	}
	return journal, nil
}

// FindLinesByJournalID retrieves all lines of a journal in insertion order.
func (r *journalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, account_id, debit, credit
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_id;
	`
	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(
			&line.LineID,
			&line.JournalID,
			&line.AccountID,
			&line.Debit,
			&line.Credit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line row for journal %s: %w", journalID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows for journal %s: %w", journalID, err)
	}
	return lines, nil
}

// ListJournals retrieves journal headers posted within [from, to], newest
// first. Keyset pagination on (posted_at, journal_id) keeps pages stable
// while new journals are appended.
func (r *journalRepository) ListJournals(ctx context.Context, from, to *time.Time, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT journal_id, posted_at, narration, source_type, source_id, created_at, created_by
		FROM journals
	`)

	args := []any{}
	conditions := []string{}
	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if from != nil {
		conditions = append(conditions, fmt.Sprintf("posted_at >= %s", addArg(*from)))
	}
	if to != nil {
		conditions = append(conditions, fmt.Sprintf("posted_at <= %s", addArg(*to)))
	}
	if nextToken != nil && *nextToken != "" {
		tokenPostedAt, tokenJournalID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		conditions = append(conditions, fmt.Sprintf("(posted_at, journal_id) < (%s, %s)",
			addArg(tokenPostedAt), addArg(tokenJournalID)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	// Fetch one extra row to know whether another page exists.
	sb.WriteString(fmt.Sprintf(" ORDER BY posted_at DESC, journal_id DESC LIMIT %s;", addArg(limit+1)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, *journal)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	var token *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[len(journals)-1]
		encoded := pagination.EncodeToken(last.PostedAt, last.JournalID)
		token = &encoded
	}
	return journals, token, nil
}

// scanJournal scans one journals row in the canonical column order.
func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var journal domain.Journal
	err := row.Scan(
		&journal.JournalID,
		&journal.PostedAt,
		&journal.Narration,
		&journal.SourceType,
		&journal.SourceID,
		&journal.CreatedAt,
		&journal.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &journal, nil
}
