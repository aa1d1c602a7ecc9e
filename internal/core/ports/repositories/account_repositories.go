package repositories

import (
	"context"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// AccountRepository defines persistence operations for ledger accounts.
type AccountRepository interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate if
	// an account with the same name already exists.
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID retrieves an account by ID. Returns apperrors.ErrNotFound if missing.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountByName retrieves an account by its unique name.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)
	// FindAccountsByNames retrieves accounts for the given names in one round
	// trip. Missing names are simply absent from the returned map.
	FindAccountsByNames(ctx context.Context, names []string) (map[string]domain.Account, error)
	// ListAccounts retrieves accounts ordered by name.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}
