package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
	"github.com/atithihms/hotel_books_app/internal/utils/gst"
)

// balanceEpsilon is the tolerance for the debit/credit equality check, one
// currency unit cent. Components computed by the tax calculator absorb their
// rounding remainders, so a draft built from them balances exactly; the
// epsilon only forgives sub-paisa noise in externally supplied amounts.
var balanceEpsilon = decimal.RequireFromString("0.01")

var (
	ErrJournalMinLines = errors.New("journal must have at least two lines")
	ErrLineBothSides   = errors.New("journal line must carry either a debit or a credit, not both")
	ErrNegativeAmount  = errors.New("journal line amounts must not be negative")
)

// postingService is the journal validator & poster. It enforces the balance
// invariant, resolves account names and guarantees idempotent posting per
// (sourceType, sourceID).
type postingService struct {
	accountRepo portsrepo.AccountRepository
	journalRepo portsrepo.JournalRepository
	sourceRepo  portsrepo.SourceRepository
	calc        gst.Calculator
}

// NewPostingService creates a new PostingService.
func NewPostingService(
	accountRepo portsrepo.AccountRepository,
	journalRepo portsrepo.JournalRepository,
	sourceRepo portsrepo.SourceRepository,
	calc gst.Calculator,
) portssvc.PostingSvcFacade {
	return &postingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		sourceRepo:  sourceRepo,
		calc:        calc,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// Post validates a journal draft and appends it to the ledger.
//
// Zero-amount lines are dropped before account resolution, so a draft may
// name an optional ledger that was never configured as long as nothing is
// booked against it. A nonzero line against a missing account fails with
// UnknownAccountError. An unbalanced draft fails with ErrUnbalanced and
// writes nothing. A repeated (sourceType, sourceID) returns the stored
// journal unchanged.
func (s *postingService) Post(ctx context.Context, draft dto.JournalDraft, postedBy string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if draft.SourceType == "" || draft.SourceID == "" {
		return nil, fmt.Errorf("%w: source type and source id are required", apperrors.ErrValidation)
	}

	// Drop lines with nothing on either side; validate the rest.
	lines := make([]dto.DraftLine, 0, len(draft.Lines))
	for _, l := range draft.Lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: account %q", ErrNegativeAmount, l.AccountName)
		}
		if l.Debit.IsZero() && l.Credit.IsZero() {
			logger.Debug("Dropping zero-amount line", slog.String("account", l.AccountName))
			continue
		}
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			return nil, fmt.Errorf("%w: account %q", ErrLineBothSides, l.AccountName)
		}
		lines = append(lines, l)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrJournalMinLines)
	}

	// Resolve account names against the chart of accounts.
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		names = append(names, l.AccountName)
	}
	accounts, err := s.accountRepo.FindAccountsByNames(ctx, uniqueStrings(names))
	if err != nil {
		logger.Error("Failed to resolve accounts for posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve accounts: %w", err)
	}
	for _, l := range lines {
		if _, found := accounts[l.AccountName]; !found {
			return nil, &apperrors.UnknownAccountError{AccountName: l.AccountName}
		}
	}

	// Balance check: total debits must equal total credits.
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	if debits.Sub(credits).Abs().GreaterThan(balanceEpsilon) {
		return nil, fmt.Errorf("%w: debits total %s, credits total %s",
			apperrors.ErrUnbalanced, debits.String(), credits.String())
	}

	// Idempotency fast path; the storage uniqueness constraint remains the
	// ultimate guard against concurrent duplicates.
	existing, err := s.journalRepo.FindJournalBySource(ctx, draft.SourceType, draft.SourceID)
	if err == nil {
		logger.Info("Duplicate posting attempt resolved to existing journal",
			slog.String("source_type", string(draft.SourceType)),
			slog.String("source_id", draft.SourceID),
			slog.String("journal_id", existing.JournalID))
		return s.withLines(ctx, existing)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing journal: %w", err)
	}

	now := time.Now().UTC()
	postedAt := draft.Date
	if postedAt.IsZero() {
		postedAt = now
	}
	journal := domain.Journal{
		JournalID:  uuid.NewString(),
		PostedAt:   postedAt,
		Narration:  draft.Narration,
		SourceType: draft.SourceType,
		SourceID:   draft.SourceID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: postedBy,
		},
	}
	journal.Lines = make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		journal.Lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			JournalID: journal.JournalID,
			AccountID: accounts[l.AccountName].AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		}
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent posting of the same event; the
			// winner's journal is the entry for this source.
			winner, findErr := s.journalRepo.FindJournalBySource(ctx, draft.SourceType, draft.SourceID)
			if findErr != nil {
				return nil, fmt.Errorf("failed to load journal after duplicate insert: %w", findErr)
			}
			logger.Info("Concurrent duplicate posting converged to existing journal",
				slog.String("journal_id", winner.JournalID))
			return s.withLines(ctx, winner)
		}
		logger.Error("Failed to save journal", slog.String("error", err.Error()),
			slog.String("source_id", draft.SourceID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	logger.Info("Journal posted",
		slog.String("journal_id", journal.JournalID),
		slog.String("source_type", string(journal.SourceType)),
		slog.String("source_id", journal.SourceID),
		slog.String("amount", debits.String()))
	return &journal, nil
}

// PostEvent translates a business event into a journal draft, records its raw
// source row where applicable and posts the draft.
func (s *postingService) PostEvent(ctx context.Context, event domain.SourceEvent, postedBy string) (*domain.Journal, error) {
	draft, err := s.translate(ctx, event)
	if err != nil {
		return nil, err
	}
	return s.Post(ctx, draft, postedBy)
}

// Reverse posts a correcting journal with debit/credit roles swapped. The
// original entry is left untouched; (REVERSAL, originalJournalID) keys the
// reversal so reversing twice is idempotent too.
func (s *postingService) Reverse(ctx context.Context, journalID string, requestedBy string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}
	if original.SourceType == domain.SourceReversal {
		return nil, fmt.Errorf("%w: cannot reverse a reversal", apperrors.ErrValidation)
	}
	originalLines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for journal %s: %w", journalID, err)
	}

	if existing, err := s.journalRepo.FindJournalBySource(ctx, domain.SourceReversal, journalID); err == nil {
		logger.Info("Journal already reversed", slog.String("journal_id", journalID),
			slog.String("reversal_id", existing.JournalID))
		return s.withLines(ctx, existing)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing reversal: %w", err)
	}

	now := time.Now().UTC()
	reversal := domain.Journal{
		JournalID:  uuid.NewString(),
		PostedAt:   now,
		Narration:  fmt.Sprintf("Reversal of journal %s: %s", original.JournalID, original.Narration),
		SourceType: domain.SourceReversal,
		SourceID:   original.JournalID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: requestedBy,
		},
	}
	reversal.Lines = make([]domain.JournalLine, len(originalLines))
	for i, l := range originalLines {
		reversal.Lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			JournalID: reversal.JournalID,
			AccountID: l.AccountID,
			Debit:     l.Credit,
			Credit:    l.Debit,
		}
	}

	if err := s.journalRepo.SaveJournal(ctx, reversal); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			winner, findErr := s.journalRepo.FindJournalBySource(ctx, domain.SourceReversal, journalID)
			if findErr != nil {
				return nil, fmt.Errorf("failed to load reversal after duplicate insert: %w", findErr)
			}
			return s.withLines(ctx, winner)
		}
		logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	logger.Info("Journal reversed", slog.String("journal_id", journalID),
		slog.String("reversal_id", reversal.JournalID))
	return &reversal, nil
}

// GetJournalByID retrieves a journal with its lines.
func (s *postingService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}
	return s.withLines(ctx, journal)
}

// ListJournals retrieves a paginated list of journals.
func (s *postingService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	journals, nextToken, err := s.journalRepo.ListJournals(ctx, params.From, params.To, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	responses := make([]dto.JournalResponse, len(journals))
	for i := range journals {
		responses[i] = dto.ToJournalResponse(&journals[i])
	}
	return &dto.ListJournalsResponse{Journals: responses, NextToken: nextToken}, nil
}

func (s *postingService) withLines(ctx context.Context, journal *domain.Journal) (*domain.Journal, error) {
	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journal.JournalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for journal %s: %w", journal.JournalID, err)
	}
	journal.Lines = lines
	return journal, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
