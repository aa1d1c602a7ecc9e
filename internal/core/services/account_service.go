package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
)

// accountService provides chart-of-accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount adds a new ledger account to the chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, createdBy string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		Group:       req.Group,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: createdBy,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save account %q: %w", req.Name, err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts retrieves accounts ordered by name.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
