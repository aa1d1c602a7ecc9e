package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/core/services"
	"github.com/atithihms/hotel_books_app/internal/utils/gst"
)

type GSTReportServiceTestSuite struct {
	suite.Suite
	mockSources   *MockSourceRepository
	mockReporting *MockReportingRepository
	service       portssvc.GSTReportSvcFacade
	ctx           context.Context
}

func (s *GSTReportServiceTestSuite) SetupTest() {
	s.mockSources = new(MockSourceRepository)
	s.mockReporting = new(MockReportingRepository)
	s.service = services.NewGSTReportService(s.mockSources, s.mockReporting, gst.NewCalculator(homeState))
	s.ctx = context.Background()
}

func day(d int) time.Time {
	return time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC)
}

func (s *GSTReportServiceTestSuite) rcmFixtures() ([]domain.ExpenseRecord, []domain.PurchaseWithVendor) {
	expenses := []domain.ExpenseRecord{
		{
			ExpenseID: "exp-1", BillNo: "B-1", BillDate: day(10),
			VendorName: "Local Transporter", VendorState: homeState, Category: "Freight Charges",
			TaxableValue: dec("1000"), TaxRate: dec("5"), TaxAmount: dec("50"),
			RCMApplicable: true, ITCEligible: true,
		},
	}
	purchases := []domain.PurchaseWithVendor{
		{
			Purchase: domain.PurchaseRecord{
				PurchaseID: "pur-1", BillNo: "P-1", BillDate: day(20),
				VendorID: "v-1", TaxableValue: dec("2000"), TaxRate: dec("18"), TaxAmount: dec("360"),
				ITCEligible: false,
			},
			Vendor: domain.Vendor{VendorID: "v-1", Name: "Out of State Co", GSTIN: "27X", StateCode: "27", RCMApplicable: true},
		},
	}
	return expenses, purchases
}

func (s *GSTReportServiceTestSuite) TestGetRCMRegister() {
	expenses, purchases := s.rcmFixtures()
	s.mockSources.On("ListRCMExpenses", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(expenses, nil)
	s.mockSources.On("ListRCMPurchases", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(purchases, nil)

	summary, records, err := s.service.GetRCMRegister(s.ctx, nil, nil)

	s.Require().NoError(err)
	s.Require().Len(records, 2)

	// Newest liability first.
	s.Equal("pur-1", records[0].SourceID)
	s.Equal("exp-1", records[1].SourceID)

	// Self-invoice numbers are deterministic per source.
	s.Equal("SINV/PUR/pur-1", records[0].SelfInvoiceNo)
	s.Equal("SINV/EXP/exp-1", records[1].SelfInvoiceNo)

	// Jurisdiction split: out-of-state purchase is IGST, in-state expense
	// splits into CGST/SGST.
	s.True(records[0].IGST.Equal(dec("360")))
	s.True(records[0].CGST.IsZero())
	s.True(records[1].CGST.Equal(dec("25")))
	s.True(records[1].SGST.Equal(dec("25")))
	s.True(records[1].IGST.IsZero())

	s.Equal(2, summary.TotalRecords)
	s.True(summary.TotalTaxableValue.Equal(dec("3000")))
	s.True(summary.TotalTaxLiability.Equal(dec("410")))
	s.True(summary.TotalIGST.Equal(dec("360")))
	s.True(summary.TotalCGST.Equal(dec("25")))
	s.True(summary.TotalSGST.Equal(dec("25")))
}

func (s *GSTReportServiceTestSuite) TestGetITCRegister() {
	expenses, purchases := s.rcmFixtures()
	// ITC register filters on eligibility upstream; hand back only eligible rows.
	s.mockSources.On("ListITCExpenses", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(expenses, nil)
	s.mockSources.On("ListITCPurchases", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(purchases[:0], nil)

	summary, records, err := s.service.GetITCRegister(s.ctx, nil, nil)

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.True(records[0].ViaRCM, "credit claimed through a self-invoice is flagged")
	s.True(records[0].CGST.Equal(dec("25")))
	s.Equal(1, summary.TotalRecords)
	s.True(summary.TotalTaxLiability.Equal(dec("50")))
}

func (s *GSTReportServiceTestSuite) TestGetMasterSummary() {
	s.mockReporting.On("GetAccountTotals", s.ctx,
		[]string{domain.AccountGSTOutput, domain.AccountInputTaxCredit, domain.AccountRCMPayable},
		(*time.Time)(nil), (*time.Time)(nil),
	).Return(map[string]portsrepo.AccountTotals{
		domain.AccountGSTOutput:      {Debits: dec("100"), Credits: dec("1300")}, // 100 reversed
		domain.AccountInputTaxCredit: {Debits: dec("400"), Credits: dec("0")},
		domain.AccountRCMPayable:     {Debits: dec("0"), Credits: dec("150")},
	}, nil)

	summary, err := s.service.GetMasterSummary(s.ctx, nil, nil)

	s.Require().NoError(err)
	s.True(summary.OutputTax.Equal(dec("1200")))
	s.True(summary.ITCAvailable.Equal(dec("400")))
	s.True(summary.RCMLiability.Equal(dec("150")))
	s.True(summary.NetPayable.Equal(dec("950"))) // 1200 - 400 + 150
}

func (s *GSTReportServiceTestSuite) TestGetMasterSummary_NoActivity() {
	s.mockReporting.On("GetAccountTotals", s.ctx, mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return(map[string]portsrepo.AccountTotals{}, nil)

	summary, err := s.service.GetMasterSummary(s.ctx, nil, nil)

	s.Require().NoError(err)
	s.True(summary.NetPayable.IsZero())
}

func (s *GSTReportServiceTestSuite) TestExportRCMRegisterXLSX() {
	expenses, purchases := s.rcmFixtures()
	s.mockSources.On("ListRCMExpenses", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(expenses, nil)
	s.mockSources.On("ListRCMPurchases", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(purchases, nil)

	content, err := s.service.ExportRCMRegisterXLSX(s.ctx, nil, nil)

	s.Require().NoError(err)
	s.Require().NotEmpty(content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("RCM Register")
	s.Require().NoError(err)
	// Header + 2 records + totals row.
	s.Require().Len(rows, 4)
	s.Equal("Self Invoice No", rows[0][0])
	s.Equal("SINV/PUR/pur-1", rows[1][0])
	s.Equal("TOTAL", rows[3][0])
}

func TestGSTReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GSTReportServiceTestSuite))
}
