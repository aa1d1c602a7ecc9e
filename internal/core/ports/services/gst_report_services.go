package services

import (
	"context"
	"time"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	"github.com/atithihms/hotel_books_app/internal/dto"
)

// GSTReportSvcFacade defines the read-only GST report queries. None of them
// mutate state; they are safe to run concurrently with postings.
type GSTReportSvcFacade interface {
	GetRCMRegister(ctx context.Context, from, to *time.Time) (domain.RCMSummary, []domain.RCMRecord, error)
	GetITCRegister(ctx context.Context, from, to *time.Time) (domain.RCMSummary, []domain.ITCRecord, error)
	GetMasterSummary(ctx context.Context, from, to *time.Time) (*domain.MasterSummary, error)
	// ExportRCMRegisterXLSX renders the register as an xlsx workbook for download.
	ExportRCMRegisterXLSX(ctx context.Context, from, to *time.Time) ([]byte, error)
}

// ReconciliationSvcFacade matches internal purchase/expense records against
// an externally supplied GSTR-2B invoice list. Malformed rows land in the
// result's Rejected bucket without aborting the batch. The matcher performs
// no writes and may be cancelled between records via the context.
type ReconciliationSvcFacade interface {
	Reconcile(ctx context.Context, rows []dto.ExternalInvoiceRequest) (*dto.ReconciliationResult, error)
}
