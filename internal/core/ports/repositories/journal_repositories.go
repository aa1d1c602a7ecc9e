package repositories

import (
	"context"
	"time"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// JournalRepository defines persistence operations for the append-only
// journal store.
type JournalRepository interface {
	// SaveJournal persists a journal and all of its lines atomically (all
	// lines or none). The (source_type, source_id) uniqueness constraint is
	// the ultimate guard against concurrent duplicate postings: a conflicting
	// insert writes nothing and returns apperrors.ErrDuplicate.
	SaveJournal(ctx context.Context, journal domain.Journal) error
	// FindJournalByID retrieves a journal header by ID.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	// FindJournalBySource retrieves the journal posted for a business event,
	// if any. Returns apperrors.ErrNotFound when the event was never posted.
	FindJournalBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (*domain.Journal, error)
	// FindLinesByJournalID retrieves the lines of a journal in insertion order.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
	// ListJournals retrieves journals posted within [from, to] (either bound
	// optional), newest first, using token pagination.
	ListJournals(ctx context.Context, from, to *time.Time, limit int, nextToken *string) ([]domain.Journal, *string, error)
}
