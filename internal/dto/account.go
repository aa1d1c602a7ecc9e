package dto

import (
	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a ledger account.
type CreateAccountRequest struct {
	Name        string              `json:"name" binding:"required"`
	Group       domain.AccountGroup `json:"group" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Description string              `json:"description"`
}

// AccountResponse defines the data returned for a ledger account.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// ToAccountResponse converts a domain.Account to its DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Name:        a.Name,
		Group:       string(a.Group),
		Description: a.Description,
		IsActive:    a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain.Account to DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
