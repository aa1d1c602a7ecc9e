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

// vendorService provides supplier registration.
type vendorService struct {
	sourceRepo portsrepo.SourceRepository
}

// NewVendorService creates a new VendorService.
func NewVendorService(sourceRepo portsrepo.SourceRepository) portssvc.VendorSvcFacade {
	return &vendorService{sourceRepo: sourceRepo}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

// CreateVendor registers a supplier.
func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, createdBy string) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vendor := domain.Vendor{
		VendorID:      uuid.NewString(),
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		StateCode:     req.StateCode,
		RCMApplicable: req.RCMApplicable,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: createdBy,
		},
	}

	if err := s.sourceRepo.SaveVendor(ctx, vendor); err != nil {
		logger.Error("Failed to save vendor", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save vendor %q: %w", req.Name, err)
	}

	logger.Info("Vendor registered", slog.String("vendor_id", vendor.VendorID), slog.Bool("rcm", vendor.RCMApplicable))
	return &vendor, nil
}

// GetVendorByID retrieves a vendor.
func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.sourceRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}
	return vendor, nil
}
