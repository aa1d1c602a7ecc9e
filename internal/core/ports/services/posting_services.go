package services

import (
	"context"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	"github.com/atithihms/hotel_books_app/internal/dto"
)

// PostingSvcFacade is the journal validator & poster contract. Post validates
// the draft's balance, resolves accounts and appends the entry to the ledger
// idempotently: a repeated (sourceType, sourceID) returns the original entry.
type PostingSvcFacade interface {
	Post(ctx context.Context, draft dto.JournalDraft, postedBy string) (*domain.Journal, error)
	// PostEvent translates a business event into a journal draft and posts it.
	PostEvent(ctx context.Context, event domain.SourceEvent, postedBy string) (*domain.Journal, error)
	// Reverse posts a new journal with debit/credit roles swapped, referencing
	// the original via narration. Posted entries are never edited in place.
	Reverse(ctx context.Context, journalID string, requestedBy string) (*domain.Journal, error)
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}
