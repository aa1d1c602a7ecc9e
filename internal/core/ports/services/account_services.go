package services

import (
	"context"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	"github.com/atithihms/hotel_books_app/internal/dto"
)

// AccountSvcFacade defines operations over the chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, createdBy string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}
