package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
)

// reconcileEpsilon is the rounding tolerance when comparing internal and
// external invoice amounts.
var reconcileEpsilon = decimal.RequireFromString("0.01")

// reconciliationService matches internal purchase/expense records against an
// uploaded GSTR-2B invoice list. It performs no writes; a run can be
// cancelled between records via the context.
type reconciliationService struct {
	sourceRepo portsrepo.SourceRepository
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(sourceRepo portsrepo.SourceRepository) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{sourceRepo: sourceRepo}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// Reconcile partitions every internal and well-formed external record into
// exactly one of Matched, Mismatched, MissingInBooks or MissingInExternal.
// Malformed external rows go to Rejected with a reason and never abort the
// batch. Matching keys on the bill/invoice number.
func (s *reconciliationService) Reconcile(ctx context.Context, rows []dto.ExternalInvoiceRequest) (*dto.ReconciliationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	internal, err := s.sourceRepo.ListInvoiceRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list internal invoice records: %w", err)
	}

	index := make(map[string]int, len(internal)) // bill no -> index into internal
	for i, rec := range internal {
		if _, dup := index[rec.BillNo]; dup {
			// First occurrence wins; later duplicates fall through to
			// MissingInExternal so every internal record is classified once.
			logger.Warn("Duplicate internal bill number", slog.String("bill_no", rec.BillNo))
			continue
		}
		index[rec.BillNo] = i
	}
	consumed := make(map[int]bool, len(internal))

	result := &dto.ReconciliationResult{
		Matched:           []domain.ReconciliationMatch{},
		Mismatched:        []domain.ReconciliationMatch{},
		MissingInBooks:    []domain.ReconciliationMatch{},
		MissingInExternal: []domain.ReconciliationMatch{},
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inv, reason := dto.ParseExternalInvoice(row)
		if reason != "" {
			result.Rejected = append(result.Rejected, domain.RejectedInvoice{External: inv, Reason: reason})
			continue
		}
		external := inv

		idx, found := index[external.InvoiceNo]
		if !found || consumed[idx] {
			// Authority shows an invoice not yet entered in the books.
			result.MissingInBooks = append(result.MissingInBooks, domain.ReconciliationMatch{
				External:       &external,
				Status:         domain.MissingInBooks,
				VarianceAmount: decimal.Zero,
			})
			continue
		}
		consumed[idx] = true
		rec := internal[idx]

		taxableVariance := external.TaxableValue.Sub(rec.TaxableValue)
		taxVariance := external.TaxAmount.Sub(rec.TaxAmount)
		match := domain.ReconciliationMatch{
			Internal:       &rec,
			External:       &external,
			VarianceAmount: taxableVariance.Add(taxVariance),
		}
		if taxableVariance.Abs().LessThanOrEqual(reconcileEpsilon) && taxVariance.Abs().LessThanOrEqual(reconcileEpsilon) {
			match.Status = domain.Matched
			result.Matched = append(result.Matched, match)
		} else {
			match.Status = domain.Mismatched
			result.Mismatched = append(result.Mismatched, match)
		}
	}

	// ITC claimed in the books but not yet reflected by the authority.
	for i := range internal {
		if consumed[i] {
			continue
		}
		rec := internal[i]
		result.MissingInExternal = append(result.MissingInExternal, domain.ReconciliationMatch{
			Internal:       &rec,
			Status:         domain.MissingInExternal,
			VarianceAmount: decimal.Zero,
		})
	}

	logger.Info("Reconciliation run complete",
		slog.Int("matched", len(result.Matched)),
		slog.Int("mismatched", len(result.Mismatched)),
		slog.Int("missing_in_books", len(result.MissingInBooks)),
		slog.Int("missing_in_external", len(result.MissingInExternal)),
		slog.Int("rejected", len(result.Rejected)))
	return result, nil
}
