package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByNames(ctx context.Context, names []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockJournalRepository is a mock type for the JournalRepository interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (*domain.Journal, error) {
	args := m.Called(ctx, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, from, to *time.Time, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, from, to, limit, nextToken)
	var journals []domain.Journal
	if args.Get(0) != nil {
		journals = args.Get(0).([]domain.Journal)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return journals, token, args.Error(2)
}

// MockSourceRepository is a mock type for the SourceRepository interface
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockSourceRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockSourceRepository) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockSourceRepository) SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockSourceRepository) ListRCMExpenses(ctx context.Context, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

func (m *MockSourceRepository) ListRCMPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithVendor, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseWithVendor), args.Error(1)
}

func (m *MockSourceRepository) ListITCExpenses(ctx context.Context, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

func (m *MockSourceRepository) ListITCPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithVendor, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseWithVendor), args.Error(1)
}

func (m *MockSourceRepository) ListInvoiceRecords(ctx context.Context) ([]domain.InvoiceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRecord), args.Error(1)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAccountTotals(ctx context.Context, accountNames []string, from, to *time.Time) (map[string]portsrepo.AccountTotals, error) {
	args := m.Called(ctx, accountNames, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]portsrepo.AccountTotals), args.Error(1)
}
