package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
)

type sourceRepository struct {
	pool *pgxpool.Pool
}

// NewSourceRepository creates a new repository for vendor, expense and
// purchase source data.
func NewSourceRepository(pool *pgxpool.Pool) portsrepo.SourceRepository {
	return &sourceRepository{pool: pool}
}

var _ portsrepo.SourceRepository = (*sourceRepository)(nil)

// SaveVendor inserts a new vendor.
func (r *sourceRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		INSERT INTO vendors (vendor_id, name, gstin, state_code, rcm_applicable, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		vendor.VendorID,
		vendor.Name,
		vendor.GSTIN,
		vendor.StateCode,
		vendor.RCMApplicable,
		vendor.CreatedAt,
		vendor.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save vendor %s: %w", vendor.VendorID, err)
	}
	return nil
}

// FindVendorByID retrieves a vendor by its ID.
func (r *sourceRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, gstin, state_code, rcm_applicable, created_at, created_by
		FROM vendors
		WHERE vendor_id = $1;
	`
	var vendor domain.Vendor
	err := r.pool.QueryRow(ctx, query, vendorID).Scan(
		&vendor.VendorID,
		&vendor.Name,
		&vendor.GSTIN,
		&vendor.StateCode,
		&vendor.RCMApplicable,
		&vendor.CreatedAt,
		&vendor.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}
	return &vendor, nil
}

// SaveExpense inserts the raw expense row behind an expense event. Expense
// IDs repeat when the same event is retried; the repeated insert is a no-op
// so replays stay idempotent end to end.
func (r *sourceRepository) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	query := `
		INSERT INTO expenses (expense_id, bill_no, bill_date, vendor_id, vendor_name, vendor_gstin, vendor_state,
			category, taxable_value, tax_rate, tax_amount, rcm_applicable, itc_eligible, paid_immediately,
			created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (expense_id) DO NOTHING;
	`
	var vendorID *string
	if expense.VendorID != "" {
		vendorID = &expense.VendorID
	}
	_, err := r.pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.BillNo,
		expense.BillDate,
		vendorID,
		expense.VendorName,
		expense.VendorGSTIN,
		expense.VendorState,
		expense.Category,
		expense.TaxableValue,
		expense.TaxRate,
		expense.TaxAmount,
		expense.RCMApplicable,
		expense.ITCEligible,
		expense.PaidImmediately,
		expense.CreatedAt,
		expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

// SavePurchase inserts the raw purchase row behind a purchase-receipt event.
func (r *sourceRepository) SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error {
	query := `
		INSERT INTO purchases (purchase_id, bill_no, bill_date, vendor_id, taxable_value, tax_rate, tax_amount,
			itc_eligible, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (purchase_id) DO NOTHING;
	`
	_, err := r.pool.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.BillNo,
		purchase.BillDate,
		purchase.VendorID,
		purchase.TaxableValue,
		purchase.TaxRate,
		purchase.TaxAmount,
		purchase.ITCEligible,
		purchase.CreatedAt,
		purchase.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase %s: %w", purchase.PurchaseID, err)
	}
	return nil
}

// ListRCMExpenses retrieves reverse-charge expenses within [from, to].
func (r *sourceRepository) ListRCMExpenses(ctx context.Context, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	return r.listExpenses(ctx, "rcm_applicable = TRUE", from, to)
}

// ListITCExpenses retrieves ITC-eligible expenses within [from, to].
func (r *sourceRepository) ListITCExpenses(ctx context.Context, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	return r.listExpenses(ctx, "itc_eligible = TRUE", from, to)
}

func (r *sourceRepository) listExpenses(ctx context.Context, filter string, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT expense_id, bill_no, bill_date, vendor_id, vendor_name, vendor_gstin, vendor_state,
			category, taxable_value, tax_rate, tax_amount, rcm_applicable, itc_eligible, paid_immediately,
			created_at, created_by
		FROM expenses
		WHERE `)
	sb.WriteString(filter)

	args := []any{}
	if from != nil {
		args = append(args, *from)
		sb.WriteString(fmt.Sprintf(" AND bill_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		sb.WriteString(fmt.Sprintf(" AND bill_date <= $%d", len(args)))
	}
	sb.WriteString(" ORDER BY bill_date, expense_id;")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.ExpenseRecord{}
	for rows.Next() {
		var exp domain.ExpenseRecord
		var vendorID *string
		if err := rows.Scan(
			&exp.ExpenseID,
			&exp.BillNo,
			&exp.BillDate,
			&vendorID,
			&exp.VendorName,
			&exp.VendorGSTIN,
			&exp.VendorState,
			&exp.Category,
			&exp.TaxableValue,
			&exp.TaxRate,
			&exp.TaxAmount,
			&exp.RCMApplicable,
			&exp.ITCEligible,
			&exp.PaidImmediately,
			&exp.CreatedAt,
			&exp.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		if vendorID != nil {
			exp.VendorID = *vendorID
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// ListRCMPurchases retrieves purchases from reverse-charge vendors.
func (r *sourceRepository) ListRCMPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithVendor, error) {
	return r.listPurchases(ctx, "v.rcm_applicable = TRUE", from, to)
}

// ListITCPurchases retrieves ITC-eligible purchases.
func (r *sourceRepository) ListITCPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithVendor, error) {
	return r.listPurchases(ctx, "p.itc_eligible = TRUE", from, to)
}

func (r *sourceRepository) listPurchases(ctx context.Context, filter string, from, to *time.Time) ([]domain.PurchaseWithVendor, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.purchase_id, p.bill_no, p.bill_date, p.vendor_id, p.taxable_value, p.tax_rate, p.tax_amount,
			p.itc_eligible, p.created_at, p.created_by,
			v.vendor_id, v.name, v.gstin, v.state_code, v.rcm_applicable, v.created_at, v.created_by
		FROM purchases p
		JOIN vendors v ON v.vendor_id = p.vendor_id
		WHERE `)
	sb.WriteString(filter)

	args := []any{}
	if from != nil {
		args = append(args, *from)
		sb.WriteString(fmt.Sprintf(" AND p.bill_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		sb.WriteString(fmt.Sprintf(" AND p.bill_date <= $%d", len(args)))
	}
	sb.WriteString(" ORDER BY p.bill_date, p.purchase_id;")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.PurchaseWithVendor{}
	for rows.Next() {
		var pv domain.PurchaseWithVendor
		if err := rows.Scan(
			&pv.Purchase.PurchaseID,
			&pv.Purchase.BillNo,
			&pv.Purchase.BillDate,
			&pv.Purchase.VendorID,
			&pv.Purchase.TaxableValue,
			&pv.Purchase.TaxRate,
			&pv.Purchase.TaxAmount,
			&pv.Purchase.ITCEligible,
			&pv.Purchase.CreatedAt,
			&pv.Purchase.CreatedBy,
			&pv.Vendor.VendorID,
			&pv.Vendor.Name,
			&pv.Vendor.GSTIN,
			&pv.Vendor.StateCode,
			&pv.Vendor.RCMApplicable,
			&pv.Vendor.CreatedAt,
			&pv.Vendor.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, pv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}
	return purchases, nil
}

// ListInvoiceRecords retrieves the flattened inward-supply rows (expenses and
// purchases alike) that GSTR-2B matching runs against.
func (r *sourceRepository) ListInvoiceRecords(ctx context.Context) ([]domain.InvoiceRecord, error) {
	query := `
		SELECT 'EXPENSE' AS source_type, expense_id AS source_id, bill_no, vendor_name, vendor_gstin,
			taxable_value, tax_amount
		FROM expenses
		UNION ALL
		SELECT 'PURCHASE', p.purchase_id, p.bill_no, v.name, v.gstin, p.taxable_value, p.tax_amount
		FROM purchases p
		JOIN vendors v ON v.vendor_id = p.vendor_id
		ORDER BY bill_no, source_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice records: %w", err)
	}
	defer rows.Close()

	records := []domain.InvoiceRecord{}
	for rows.Next() {
		var rec domain.InvoiceRecord
		if err := rows.Scan(
			&rec.SourceType,
			&rec.SourceID,
			&rec.BillNo,
			&rec.VendorName,
			&rec.VendorGSTIN,
			&rec.TaxableValue,
			&rec.TaxAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice record rows: %w", err)
	}
	return records, nil
}
