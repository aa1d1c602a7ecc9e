package services

import (
	"context"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	"github.com/atithihms/hotel_books_app/internal/dto"
)

// VendorSvcFacade defines supplier registration operations. The RCM flag on
// a vendor drives reverse-charge handling for its purchases.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, createdBy string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
}
