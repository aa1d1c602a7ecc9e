package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/core/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/utils/gst"
)

const homeState = "29" // Karnataka

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// accountsNamed builds a chart-of-accounts lookup result for the given names.
func accountsNamed(names ...string) map[string]domain.Account {
	m := make(map[string]domain.Account, len(names))
	for i, name := range names {
		m[name] = domain.Account{
			AccountID: "acc-" + string(rune('a'+i)) + name,
			Name:      name,
			IsActive:  true,
		}
	}
	return m
}

type PostingServiceTestSuite struct {
	suite.Suite
	mockAccounts *MockAccountRepository
	mockJournals *MockJournalRepository
	mockSources  *MockSourceRepository
	service      portssvc.PostingSvcFacade
	ctx          context.Context
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.mockAccounts = new(MockAccountRepository)
	s.mockJournals = new(MockJournalRepository)
	s.mockSources = new(MockSourceRepository)
	s.service = services.NewPostingService(s.mockAccounts, s.mockJournals, s.mockSources, gst.NewCalculator(homeState))
	s.ctx = context.Background()
}

func (s *PostingServiceTestSuite) balancedDraft() dto.JournalDraft {
	return dto.JournalDraft{
		SourceType: domain.SourceManual,
		SourceID:   "manual-1",
		Narration:  "Opening cash",
		Lines: []dto.DraftLine{
			{AccountName: domain.AccountCashBank, Debit: dec("500")},
			{AccountName: domain.AccountRoomRevenue, Credit: dec("500")},
		},
	}
}

// expectFreshPost wires the mocks for a draft that has never been posted and
// captures the journal handed to SaveJournal.
func (s *PostingServiceTestSuite) expectFreshPost(saved *domain.Journal) {
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(
		accountsNamed(
			domain.AccountCashBank, domain.AccountRoomRevenue, domain.AccountFoodRevenue,
			domain.AccountServiceChargeIncome, domain.AccountGSTOutput, domain.AccountAdvanceFromCustomers,
			domain.AccountAccountsPayable, domain.AccountInputTaxCredit, domain.AccountRCMPayable,
			domain.AccountInventory, domain.AccountGeneralExpenses,
		), nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		*saved = args.Get(1).(domain.Journal)
	}).Return(nil)
}

// lineAmounts flattens a journal's lines to accountID -> (debit, credit) for
// assertions.
func lineFor(j domain.Journal, accounts map[string]domain.Account, name string) *domain.JournalLine {
	accID := accounts[name].AccountID
	for i := range j.Lines {
		if j.Lines[i].AccountID == accID {
			return &j.Lines[i]
		}
	}
	return nil
}

func (s *PostingServiceTestSuite) TestPost_Success() {
	var saved domain.Journal
	s.expectFreshPost(&saved)

	journal, err := s.service.Post(s.ctx, s.balancedDraft(), "tester")

	s.Require().NoError(err)
	s.Require().NotNil(journal)
	s.Equal(domain.SourceManual, journal.SourceType)
	s.Equal("manual-1", journal.SourceID)
	s.Len(saved.Lines, 2)
	s.Equal("tester", saved.CreatedBy)

	// Every line carries exactly one side.
	for _, l := range saved.Lines {
		s.False(l.Debit.IsPositive() && l.Credit.IsPositive())
		s.Equal(saved.JournalID, l.JournalID)
	}
}

func (s *PostingServiceTestSuite) TestPost_UnbalancedWritesNothing() {
	draft := s.balancedDraft()
	draft.Lines[1].Credit = dec("400") // 500 debit vs 400 credit

	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(
		accountsNamed(domain.AccountCashBank, domain.AccountRoomRevenue), nil)

	_, err := s.service.Post(s.ctx, draft, "tester")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnbalanced)
	s.mockJournals.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPost_ToleratesEpsilonRounding() {
	draft := s.balancedDraft()
	draft.Lines[1].Credit = dec("499.99") // off by one paisa, within tolerance

	var saved domain.Journal
	s.expectFreshPost(&saved)

	_, err := s.service.Post(s.ctx, draft, "tester")
	s.NoError(err)
}

func (s *PostingServiceTestSuite) TestPost_UnknownAccountNamesTheAccount() {
	draft := s.balancedDraft()
	draft.Lines[1].AccountName = "Imaginary Ledger"

	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(
		accountsNamed(domain.AccountCashBank), nil)

	_, err := s.service.Post(s.ctx, draft, "tester")

	s.Require().Error(err)
	var unknown *apperrors.UnknownAccountError
	s.Require().ErrorAs(err, &unknown)
	s.Equal("Imaginary Ledger", unknown.AccountName)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockJournals.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPost_DropsZeroAmountLines() {
	draft := s.balancedDraft()
	// A zero line against an account that does not exist anywhere must not
	// fail the posting.
	draft.Lines = append(draft.Lines, dto.DraftLine{AccountName: "Never Configured", Debit: decimal.Zero})

	var saved domain.Journal
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.MatchedBy(func(names []string) bool {
		for _, n := range names {
			if n == "Never Configured" {
				return false
			}
		}
		return len(names) == 2
	})).Return(accountsNamed(domain.AccountCashBank, domain.AccountRoomRevenue), nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)

	_, err := s.service.Post(s.ctx, draft, "tester")

	s.Require().NoError(err)
	s.Len(saved.Lines, 2)
}

func (s *PostingServiceTestSuite) TestPost_RejectsNegativeAmounts() {
	draft := s.balancedDraft()
	draft.Lines[0].Debit = dec("-500")

	_, err := s.service.Post(s.ctx, draft, "tester")
	s.Error(err)
}

func (s *PostingServiceTestSuite) TestPost_RejectsLineWithBothSides() {
	draft := s.balancedDraft()
	draft.Lines[0].Credit = dec("1")

	_, err := s.service.Post(s.ctx, draft, "tester")
	s.Error(err)
}

func (s *PostingServiceTestSuite) TestPost_RequiresSourceKey() {
	draft := s.balancedDraft()
	draft.SourceID = ""

	_, err := s.service.Post(s.ctx, draft, "tester")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PostingServiceTestSuite) TestPost_ReplayReturnsOriginalJournal() {
	existing := &domain.Journal{JournalID: "j-original", SourceType: domain.SourceManual, SourceID: "manual-1"}
	existingLines := []domain.JournalLine{
		{LineID: "l1", JournalID: "j-original", AccountID: "acc-1", Debit: dec("500")},
		{LineID: "l2", JournalID: "j-original", AccountID: "acc-2", Credit: dec("500")},
	}

	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(
		accountsNamed(domain.AccountCashBank, domain.AccountRoomRevenue), nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, domain.SourceManual, "manual-1").Return(existing, nil)
	s.mockJournals.On("FindLinesByJournalID", s.ctx, "j-original").Return(existingLines, nil)

	journal, err := s.service.Post(s.ctx, s.balancedDraft(), "tester")

	s.Require().NoError(err)
	s.Equal("j-original", journal.JournalID)
	s.Len(journal.Lines, 2)
	s.mockJournals.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPost_ConcurrentDuplicateConvergesToWinner() {
	winner := &domain.Journal{JournalID: "j-winner", SourceType: domain.SourceManual, SourceID: "manual-1"}
	winnerLines := []domain.JournalLine{
		{LineID: "l1", JournalID: "j-winner", AccountID: "acc-1", Debit: dec("500")},
		{LineID: "l2", JournalID: "j-winner", AccountID: "acc-2", Credit: dec("500")},
	}

	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(
		accountsNamed(domain.AccountCashBank, domain.AccountRoomRevenue), nil)
	// Pre-check sees nothing, then the insert loses the race and the re-read
	// finds the winner.
	s.mockJournals.On("FindJournalBySource", s.ctx, domain.SourceManual, "manual-1").Return(nil, apperrors.ErrNotFound).Once()
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Return(apperrors.ErrDuplicate)
	s.mockJournals.On("FindJournalBySource", s.ctx, domain.SourceManual, "manual-1").Return(winner, nil).Once()
	s.mockJournals.On("FindLinesByJournalID", s.ctx, "j-winner").Return(winnerLines, nil)

	journal, err := s.service.Post(s.ctx, s.balancedDraft(), "tester")

	s.Require().NoError(err)
	s.Equal("j-winner", journal.JournalID)
}

func (s *PostingServiceTestSuite) TestReverse_SwapsDebitsAndCredits() {
	original := &domain.Journal{JournalID: "j-1", SourceType: domain.SourceCheckout, SourceID: "bk-1", Narration: "Checkout"}
	originalLines := []domain.JournalLine{
		{LineID: "l1", JournalID: "j-1", AccountID: "acc-cash", Debit: dec("1180")},
		{LineID: "l2", JournalID: "j-1", AccountID: "acc-rev", Credit: dec("1000")},
		{LineID: "l3", JournalID: "j-1", AccountID: "acc-gst", Credit: dec("180")},
	}

	var saved domain.Journal
	s.mockJournals.On("FindJournalByID", s.ctx, "j-1").Return(original, nil)
	s.mockJournals.On("FindLinesByJournalID", s.ctx, "j-1").Return(originalLines, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, domain.SourceReversal, "j-1").Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)

	reversal, err := s.service.Reverse(s.ctx, "j-1", "tester")

	s.Require().NoError(err)
	s.Equal(domain.SourceReversal, reversal.SourceType)
	s.Equal("j-1", reversal.SourceID)
	s.Contains(reversal.Narration, "j-1")

	s.Require().Len(saved.Lines, 3)
	s.True(saved.Lines[0].Credit.Equal(dec("1180")))
	s.True(saved.Lines[0].Debit.IsZero())
	s.True(saved.Lines[1].Debit.Equal(dec("1000")))
	s.True(saved.Lines[2].Debit.Equal(dec("180")))
}

func (s *PostingServiceTestSuite) TestReverse_RefusesReversingAReversal() {
	original := &domain.Journal{JournalID: "j-2", SourceType: domain.SourceReversal, SourceID: "j-1"}
	s.mockJournals.On("FindJournalByID", s.ctx, "j-2").Return(original, nil)

	_, err := s.service.Reverse(s.ctx, "j-2", "tester")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockJournals.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestReverse_IsIdempotent() {
	original := &domain.Journal{JournalID: "j-1", SourceType: domain.SourceCheckout, SourceID: "bk-1"}
	existingReversal := &domain.Journal{JournalID: "j-rev", SourceType: domain.SourceReversal, SourceID: "j-1"}

	s.mockJournals.On("FindJournalByID", s.ctx, "j-1").Return(original, nil)
	s.mockJournals.On("FindLinesByJournalID", s.ctx, "j-1").Return([]domain.JournalLine{}, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, domain.SourceReversal, "j-1").Return(existingReversal, nil)
	s.mockJournals.On("FindLinesByJournalID", s.ctx, "j-rev").Return([]domain.JournalLine{}, nil)

	reversal, err := s.service.Reverse(s.ctx, "j-1", "tester")

	s.Require().NoError(err)
	s.Equal("j-rev", reversal.JournalID)
	s.mockJournals.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPostEvent_CheckoutAppliesAdvance() {
	// Bill of 6800 (5000 room + 1000 food + 200 service + 600 tax) with a
	// 2000 advance collected at booking time: cash moves only 4800 and the
	// advance liability is extinguished.
	accounts := accountsNamed(
		domain.AccountCashBank, domain.AccountAdvanceFromCustomers, domain.AccountRoomRevenue,
		domain.AccountFoodRevenue, domain.AccountServiceChargeIncome, domain.AccountGSTOutput,
	)
	var saved domain.Journal
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(accounts, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)

	event := domain.CheckoutEvent{
		BookingID:      "bk-100",
		GuestName:      "A Guest",
		RoomCharge:     dec("5000"),
		FoodCharge:     dec("1000"),
		ServiceCharge:  dec("200"),
		TaxAmount:      dec("600"),
		AdvanceApplied: dec("2000"),
	}
	journal, err := s.service.PostEvent(s.ctx, event, "booking-module")

	s.Require().NoError(err)
	s.Equal(domain.SourceCheckout, journal.SourceType)
	s.Equal("bk-100", journal.SourceID)

	s.Require().NotNil(lineFor(saved, accounts, domain.AccountCashBank))
	s.True(lineFor(saved, accounts, domain.AccountCashBank).Debit.Equal(dec("4800")))
	s.True(lineFor(saved, accounts, domain.AccountAdvanceFromCustomers).Debit.Equal(dec("2000")))
	s.True(lineFor(saved, accounts, domain.AccountRoomRevenue).Credit.Equal(dec("5000")))
	s.True(lineFor(saved, accounts, domain.AccountGSTOutput).Credit.Equal(dec("600")))

	// The entry balances exactly.
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range saved.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	s.True(debits.Equal(credits))
}

func (s *PostingServiceTestSuite) TestPostEvent_CheckoutWithoutAdvanceDropsAdvanceLine() {
	accounts := accountsNamed(
		domain.AccountCashBank, domain.AccountRoomRevenue, domain.AccountGSTOutput,
	)
	var saved domain.Journal
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(accounts, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)

	event := domain.CheckoutEvent{
		BookingID:  "bk-101",
		RoomCharge: dec("2000"),
		TaxAmount:  dec("240"),
	}
	_, err := s.service.PostEvent(s.ctx, event, "booking-module")

	s.Require().NoError(err)
	// Food, service and advance lines are all zero and dropped.
	s.Len(saved.Lines, 3)
}

func (s *PostingServiceTestSuite) TestPostEvent_FoodOrderBackCalculatesInclusiveTotal() {
	accounts := accountsNamed(domain.AccountCashBank, domain.AccountFoodRevenue, domain.AccountGSTOutput)
	var saved domain.Journal
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(accounts, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)

	event := domain.FoodOrderEvent{OrderID: "ord-7", Total: dec("1050"), TaxRate: dec("5")}
	_, err := s.service.PostEvent(s.ctx, event, "pos-module")

	s.Require().NoError(err)
	s.True(lineFor(saved, accounts, domain.AccountCashBank).Debit.Equal(dec("1050")))
	s.True(lineFor(saved, accounts, domain.AccountFoodRevenue).Credit.Equal(dec("1000")))
	s.True(lineFor(saved, accounts, domain.AccountGSTOutput).Credit.Equal(dec("50")))
}

func (s *PostingServiceTestSuite) TestPostEvent_ExpenseRCMWithITC() {
	accounts := accountsNamed(
		domain.AccountGeneralExpenses, domain.AccountAccountsPayable,
		domain.AccountInputTaxCredit, domain.AccountRCMPayable,
	)
	var saved domain.Journal
	var savedRecord domain.ExpenseRecord
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(accounts, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)
	s.mockSources.On("SaveExpense", s.ctx, mock.AnythingOfType("domain.ExpenseRecord")).Run(func(args mock.Arguments) {
		savedRecord = args.Get(1).(domain.ExpenseRecord)
	}).Return(nil)

	event := domain.ExpenseEvent{
		ExpenseID:     "exp-1",
		BillNo:        "B-100",
		VendorName:    "Local Transporter",
		VendorState:   homeState,
		TaxableValue:  dec("1000"),
		TaxRate:       dec("5"),
		RCMApplicable: true,
		ITCEligible:   true,
	}
	_, err := s.service.PostEvent(s.ctx, event, "expense-desk")

	s.Require().NoError(err)
	// The vendor is owed only the taxable value; the 50 tax is self-assessed.
	s.True(lineFor(saved, accounts, domain.AccountGeneralExpenses).Debit.Equal(dec("1000")))
	s.True(lineFor(saved, accounts, domain.AccountAccountsPayable).Credit.Equal(dec("1000")))
	s.True(lineFor(saved, accounts, domain.AccountInputTaxCredit).Debit.Equal(dec("50")))
	s.True(lineFor(saved, accounts, domain.AccountRCMPayable).Credit.Equal(dec("50")))

	// The raw source row feeds the registers with the computed tax.
	s.Equal("exp-1", savedRecord.ExpenseID)
	s.True(savedRecord.TaxAmount.Equal(dec("50")))
	s.True(savedRecord.RCMApplicable)
}

func (s *PostingServiceTestSuite) TestPostEvent_ExpenseNonRCMWithoutITCBooksGross() {
	accounts := accountsNamed(domain.AccountGeneralExpenses, domain.AccountCashBank)
	var saved domain.Journal
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(accounts, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)
	s.mockSources.On("SaveExpense", s.ctx, mock.AnythingOfType("domain.ExpenseRecord")).Return(nil)

	event := domain.ExpenseEvent{
		ExpenseID:       "exp-2",
		BillNo:          "B-101",
		VendorName:      "Stationery Shop",
		VendorState:     homeState,
		TaxableValue:    dec("1000"),
		TaxRate:         dec("18"),
		PaidImmediately: true,
	}
	_, err := s.service.PostEvent(s.ctx, event, "expense-desk")

	s.Require().NoError(err)
	// No ITC: the tax is part of the expense cost, settled in cash.
	s.True(lineFor(saved, accounts, domain.AccountGeneralExpenses).Debit.Equal(dec("1180")))
	s.True(lineFor(saved, accounts, domain.AccountCashBank).Credit.Equal(dec("1180")))
}

func (s *PostingServiceTestSuite) TestPostEvent_PurchaseUsesVendorRCMFlag() {
	vendor := &domain.Vendor{VendorID: "v-1", Name: "Goods Supplier", StateCode: "27", RCMApplicable: false}
	accounts := accountsNamed(domain.AccountInventory, domain.AccountInputTaxCredit, domain.AccountAccountsPayable)
	var saved domain.Journal
	s.mockSources.On("FindVendorByID", s.ctx, "v-1").Return(vendor, nil)
	s.mockSources.On("SavePurchase", s.ctx, mock.AnythingOfType("domain.PurchaseRecord")).Return(nil)
	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(accounts, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	s.mockJournals.On("SaveJournal", s.ctx, mock.AnythingOfType("domain.Journal")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Journal)
	}).Return(nil)

	event := domain.PurchaseEvent{
		PurchaseID:   "pur-1",
		BillNo:       "P-55",
		VendorID:     "v-1",
		TaxableValue: dec("10000"),
		TaxRate:      dec("18"),
		ITCEligible:  true,
	}
	_, err := s.service.PostEvent(s.ctx, event, "inventory-module")

	s.Require().NoError(err)
	s.True(lineFor(saved, accounts, domain.AccountInventory).Debit.Equal(dec("10000")))
	s.True(lineFor(saved, accounts, domain.AccountInputTaxCredit).Debit.Equal(dec("1800")))
	s.True(lineFor(saved, accounts, domain.AccountAccountsPayable).Credit.Equal(dec("11800")))
}

func (s *PostingServiceTestSuite) TestPostEvent_PurchaseUnknownVendor() {
	s.mockSources.On("FindVendorByID", s.ctx, "v-missing").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.PostEvent(s.ctx, domain.PurchaseEvent{PurchaseID: "pur-2", VendorID: "v-missing"}, "inventory-module")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

type unsupportedEvent struct{}

func (unsupportedEvent) SourceRef() (domain.SourceType, string) { return "UNKNOWN", "x" }

func (s *PostingServiceTestSuite) TestPostEvent_UnsupportedTypeFailsLoudly() {
	_, err := s.service.PostEvent(s.ctx, unsupportedEvent{}, "tester")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PostingServiceTestSuite) TestPostEvent_ReplayedEventPostsOnce() {
	existing := &domain.Journal{JournalID: "j-existing", SourceType: domain.SourceFoodOrder, SourceID: "ord-7"}
	accounts := accountsNamed(domain.AccountCashBank, domain.AccountFoodRevenue, domain.AccountGSTOutput)

	s.mockAccounts.On("FindAccountsByNames", s.ctx, mock.Anything).Return(accounts, nil)
	s.mockJournals.On("FindJournalBySource", s.ctx, domain.SourceFoodOrder, "ord-7").Return(existing, nil)
	s.mockJournals.On("FindLinesByJournalID", s.ctx, "j-existing").Return([]domain.JournalLine{}, nil)

	event := domain.FoodOrderEvent{OrderID: "ord-7", Total: dec("1050"), TaxRate: dec("5")}
	journal, err := s.service.PostEvent(s.ctx, event, "pos-module")

	s.Require().NoError(err)
	s.Equal("j-existing", journal.JournalID)
	s.mockJournals.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestListJournals_DefaultsLimit() {
	s.mockJournals.On("ListJournals", s.ctx, (*time.Time)(nil), (*time.Time)(nil), 20, (*string)(nil)).Return([]domain.Journal{}, nil, nil)

	resp, err := s.service.ListJournals(s.ctx, dto.ListJournalsParams{})

	s.Require().NoError(err)
	s.Empty(resp.Journals)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
