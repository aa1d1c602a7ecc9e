package repositories

import (
	"context"
	"time"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// SourceRepository defines persistence for the raw purchase/expense/vendor
// source tables. The register and reconciliation reads work off these rows
// directly, independent of journal posting.
type SourceRepository interface {
	// SaveVendor persists a vendor. Returns apperrors.ErrDuplicate on a
	// repeated vendor ID.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	// FindVendorByID retrieves a vendor. Returns apperrors.ErrNotFound if missing.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	// SaveExpense persists the raw expense row behind an expense event.
	SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error
	// SavePurchase persists the raw purchase row behind a purchase event.
	SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error

	// ListRCMExpenses retrieves RCM-flagged expenses with bill dates within
	// [from, to] (either bound optional).
	ListRCMExpenses(ctx context.Context, from, to *time.Time) ([]domain.ExpenseRecord, error)
	// ListRCMPurchases retrieves purchases from RCM-flagged vendors, joined
	// with the vendor row.
	ListRCMPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithVendor, error)
	// ListITCExpenses retrieves ITC-eligible expenses.
	ListITCExpenses(ctx context.Context, from, to *time.Time) ([]domain.ExpenseRecord, error)
	// ListITCPurchases retrieves ITC-eligible purchases joined with vendors.
	ListITCPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithVendor, error)
	// ListInvoiceRecords retrieves the flattened inward-supply rows used for
	// GSTR-2B matching, keyed by bill number upstream.
	ListInvoiceRecords(ctx context.Context) ([]domain.InvoiceRecord, error)
}
