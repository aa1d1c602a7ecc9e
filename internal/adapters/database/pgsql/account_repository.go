package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for ledger account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &accountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*accountRepository)(nil)

// SaveAccount inserts a new account. Account names are unique; a repeated
// name maps to apperrors.ErrDuplicate.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, name, account_group, description, is_active, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.Group,
		account.Description,
		account.IsActive,
		account.CreatedAt,
		account.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, account_group, description, is_active, created_at, created_by
		FROM accounts
		WHERE account_id = $1;
	`
	acc, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, nil
}

// FindAccountByName retrieves an account by its unique name.
func (r *accountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, account_group, description, is_active, created_at, created_by
		FROM accounts
		WHERE name = $1;
	`
	acc, err := scanAccount(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by name %q: %w", name, err)
	}
	return acc, nil
}

// FindAccountsByNames retrieves accounts for the given names in one query.
// Names with no matching account are simply absent from the returned map;
// the caller decides whether that is fatal.
func (r *accountRepository) FindAccountsByNames(ctx context.Context, names []string) (map[string]domain.Account, error) {
	if len(names) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `
		SELECT account_id, name, account_group, description, is_active, created_at, created_by
		FROM accounts
		WHERE name = ANY($1);
	`
	rows, err := r.pool.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by names: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(names))
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[acc.Name] = *acc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts ordered by name.
func (r *accountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT account_id, name, account_group, description, is_active, created_at, created_by
		FROM accounts
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// scanAccount scans one accounts row in the canonical column order.
func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.AccountID,
		&acc.Name,
		&acc.Group,
		&acc.Description,
		&acc.IsActive,
		&acc.CreatedAt,
		&acc.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
