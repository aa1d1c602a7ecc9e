package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/middleware"
	"github.com/atithihms/hotel_books_app/internal/utils/gst"
)

// gstReportService assembles the GST read models: the reverse-charge
// register, the input-tax-credit register and the period master summary.
// Everything is computed on read from the raw source tables and posted
// ledger lines; nothing here mutates state.
type gstReportService struct {
	sourceRepo    portsrepo.SourceRepository
	reportingRepo portsrepo.ReportingRepository
	calc          gst.Calculator
}

// NewGSTReportService creates a new GSTReportService.
func NewGSTReportService(
	sourceRepo portsrepo.SourceRepository,
	reportingRepo portsrepo.ReportingRepository,
	calc gst.Calculator,
) portssvc.GSTReportSvcFacade {
	return &gstReportService{
		sourceRepo:    sourceRepo,
		reportingRepo: reportingRepo,
		calc:          calc,
	}
}

var _ portssvc.GSTReportSvcFacade = (*gstReportService)(nil)

// selfInvoiceNo derives the deterministic self-invoice number for an RCM
// supply. Under reverse charge the recipient raises the invoice on itself,
// so the number must be reproducible across register runs.
func selfInvoiceNo(sourceType domain.SourceType, sourceID string) string {
	prefix := "PUR"
	if sourceType == domain.SourceExpense {
		prefix = "EXP"
	}
	return fmt.Sprintf("SINV/%s/%s", prefix, sourceID)
}

// GetRCMRegister assembles the reverse-charge register for the period:
// RCM-flagged expenses plus purchases from RCM-flagged vendors, with the
// jurisdiction split recomputed against the configured home state.
func (s *gstReportService) GetRCMRegister(ctx context.Context, from, to *time.Time) (domain.RCMSummary, []domain.RCMRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expenses, err := s.sourceRepo.ListRCMExpenses(ctx, from, to)
	if err != nil {
		return domain.RCMSummary{}, nil, fmt.Errorf("failed to list RCM expenses: %w", err)
	}
	purchases, err := s.sourceRepo.ListRCMPurchases(ctx, from, to)
	if err != nil {
		return domain.RCMSummary{}, nil, fmt.Errorf("failed to list RCM purchases: %w", err)
	}

	records := make([]domain.RCMRecord, 0, len(expenses)+len(purchases))
	for _, e := range expenses {
		breakup := s.calc.SplitByJurisdiction(e.TaxableValue, e.TaxRate, e.VendorState)
		records = append(records, domain.RCMRecord{
			SelfInvoiceNo:  selfInvoiceNo(domain.SourceExpense, e.ExpenseID),
			LiabilityDate:  e.BillDate,
			Supplier:       e.VendorName,
			SupplierGSTIN:  e.VendorGSTIN,
			NatureOfSupply: e.Category,
			OriginalBillNo: e.BillNo,
			TaxableValue:   e.TaxableValue,
			Rate:           e.TaxRate,
			TaxLiability:   breakup.TotalTax(),
			IGST:           breakup.IGST,
			CGST:           breakup.CGST,
			SGST:           breakup.SGST,
			ITCEligible:    e.ITCEligible,
			SourceType:     domain.SourceExpense,
			SourceID:       e.ExpenseID,
			PlaceOfSupply:  e.VendorState,
		})
	}
	for _, p := range purchases {
		breakup := s.calc.SplitByJurisdiction(p.Purchase.TaxableValue, p.Purchase.TaxRate, p.Vendor.StateCode)
		records = append(records, domain.RCMRecord{
			SelfInvoiceNo:  selfInvoiceNo(domain.SourcePurchase, p.Purchase.PurchaseID),
			LiabilityDate:  p.Purchase.BillDate,
			Supplier:       p.Vendor.Name,
			SupplierGSTIN:  p.Vendor.GSTIN,
			NatureOfSupply: "Inventory / Goods",
			OriginalBillNo: p.Purchase.BillNo,
			TaxableValue:   p.Purchase.TaxableValue,
			Rate:           p.Purchase.TaxRate,
			TaxLiability:   breakup.TotalTax(),
			IGST:           breakup.IGST,
			CGST:           breakup.CGST,
			SGST:           breakup.SGST,
			ITCEligible:    p.Purchase.ITCEligible,
			SourceType:     domain.SourcePurchase,
			SourceID:       p.Purchase.PurchaseID,
			PlaceOfSupply:  p.Vendor.StateCode,
		})
	}

	// Newest liability first; source id breaks ties so runs are deterministic.
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].LiabilityDate.Equal(records[j].LiabilityDate) {
			return records[i].LiabilityDate.After(records[j].LiabilityDate)
		}
		return records[i].SourceID < records[j].SourceID
	})

	summary := domain.RCMSummary{
		TotalRecords:      len(records),
		TotalTaxableValue: decimal.Zero,
		TotalTaxLiability: decimal.Zero,
		TotalIGST:         decimal.Zero,
		TotalCGST:         decimal.Zero,
		TotalSGST:         decimal.Zero,
	}
	for _, r := range records {
		summary.TotalTaxableValue = summary.TotalTaxableValue.Add(r.TaxableValue)
		summary.TotalTaxLiability = summary.TotalTaxLiability.Add(r.TaxLiability)
		summary.TotalIGST = summary.TotalIGST.Add(r.IGST)
		summary.TotalCGST = summary.TotalCGST.Add(r.CGST)
		summary.TotalSGST = summary.TotalSGST.Add(r.SGST)
	}

	logger.Debug("RCM register assembled", slog.Int("records", len(records)))
	return summary, records, nil
}

// GetITCRegister assembles the input-tax-credit register: ITC-eligible
// expenses and purchases, including credits arising from RCM self-invoices.
func (s *gstReportService) GetITCRegister(ctx context.Context, from, to *time.Time) (domain.RCMSummary, []domain.ITCRecord, error) {
	expenses, err := s.sourceRepo.ListITCExpenses(ctx, from, to)
	if err != nil {
		return domain.RCMSummary{}, nil, fmt.Errorf("failed to list ITC expenses: %w", err)
	}
	purchases, err := s.sourceRepo.ListITCPurchases(ctx, from, to)
	if err != nil {
		return domain.RCMSummary{}, nil, fmt.Errorf("failed to list ITC purchases: %w", err)
	}

	records := make([]domain.ITCRecord, 0, len(expenses)+len(purchases))
	for _, e := range expenses {
		breakup := s.calc.SplitByJurisdiction(e.TaxableValue, e.TaxRate, e.VendorState)
		records = append(records, domain.ITCRecord{
			BillNo:        e.BillNo,
			BillDate:      e.BillDate,
			Supplier:      e.VendorName,
			SupplierGSTIN: e.VendorGSTIN,
			TaxableValue:  e.TaxableValue,
			Rate:          e.TaxRate,
			IGST:          breakup.IGST,
			CGST:          breakup.CGST,
			SGST:          breakup.SGST,
			ViaRCM:        e.RCMApplicable,
			SourceType:    domain.SourceExpense,
			SourceID:      e.ExpenseID,
		})
	}
	for _, p := range purchases {
		breakup := s.calc.SplitByJurisdiction(p.Purchase.TaxableValue, p.Purchase.TaxRate, p.Vendor.StateCode)
		records = append(records, domain.ITCRecord{
			BillNo:        p.Purchase.BillNo,
			BillDate:      p.Purchase.BillDate,
			Supplier:      p.Vendor.Name,
			SupplierGSTIN: p.Vendor.GSTIN,
			TaxableValue:  p.Purchase.TaxableValue,
			Rate:          p.Purchase.TaxRate,
			IGST:          breakup.IGST,
			CGST:          breakup.CGST,
			SGST:          breakup.SGST,
			ViaRCM:        p.Vendor.RCMApplicable,
			SourceType:    domain.SourcePurchase,
			SourceID:      p.Purchase.PurchaseID,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].BillDate.Equal(records[j].BillDate) {
			return records[i].BillDate.After(records[j].BillDate)
		}
		return records[i].SourceID < records[j].SourceID
	})

	summary := domain.RCMSummary{TotalRecords: len(records)}
	summary.TotalTaxableValue = decimal.Zero
	summary.TotalTaxLiability = decimal.Zero
	summary.TotalIGST = decimal.Zero
	summary.TotalCGST = decimal.Zero
	summary.TotalSGST = decimal.Zero
	for _, r := range records {
		tax := r.IGST.Add(r.CGST).Add(r.SGST)
		summary.TotalTaxableValue = summary.TotalTaxableValue.Add(r.TaxableValue)
		summary.TotalTaxLiability = summary.TotalTaxLiability.Add(tax)
		summary.TotalIGST = summary.TotalIGST.Add(r.IGST)
		summary.TotalCGST = summary.TotalCGST.Add(r.CGST)
		summary.TotalSGST = summary.TotalSGST.Add(r.SGST)
	}

	return summary, records, nil
}

// GetMasterSummary computes the period GST position from posted ledger lines:
// tax collected on outward supplies, credit available and the reverse-charge
// liability.
func (s *gstReportService) GetMasterSummary(ctx context.Context, from, to *time.Time) (*domain.MasterSummary, error) {
	totals, err := s.reportingRepo.GetAccountTotals(ctx, []string{
		domain.AccountGSTOutput,
		domain.AccountInputTaxCredit,
		domain.AccountRCMPayable,
	}, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ledger totals: %w", err)
	}

	output := totals[domain.AccountGSTOutput]
	itc := totals[domain.AccountInputTaxCredit]
	rcm := totals[domain.AccountRCMPayable]

	summary := &domain.MasterSummary{
		OutputTax:    output.Credits.Sub(output.Debits),
		ITCAvailable: itc.Debits.Sub(itc.Credits),
		RCMLiability: rcm.Credits.Sub(rcm.Debits),
	}
	summary.NetPayable = summary.OutputTax.Sub(summary.ITCAvailable).Add(summary.RCMLiability)
	return summary, nil
}

// rcmExportHeaders is the column layout of the exported RCM register sheet.
var rcmExportHeaders = []string{
	"Self Invoice No", "Liability Date", "Supplier", "Supplier GSTIN",
	"Nature of Supply", "Original Bill No", "Place of Supply",
	"Taxable Value", "Rate", "IGST", "CGST", "SGST", "Tax Liability", "ITC Eligible",
}

// ExportRCMRegisterXLSX renders the RCM register as an xlsx workbook.
func (s *gstReportService) ExportRCMRegisterXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	summary, records, err := s.GetRCMRegister(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "RCM Register"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	for col, h := range rcmExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, r := range records {
		values := []interface{}{
			r.SelfInvoiceNo,
			r.LiabilityDate.Format("02-01-2006"),
			r.Supplier,
			r.SupplierGSTIN,
			r.NatureOfSupply,
			r.OriginalBillNo,
			r.PlaceOfSupply,
			r.TaxableValue.InexactFloat64(),
			r.Rate.InexactFloat64(),
			r.IGST.InexactFloat64(),
			r.CGST.InexactFloat64(),
			r.SGST.InexactFloat64(),
			r.TaxLiability.InexactFloat64(),
			r.ITCEligible,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write register row: %w", err)
		}
	}

	// Totals row under the data.
	totalsRow := len(records) + 2
	cell, err := excelize.CoordinatesToCellName(1, totalsRow)
	if err != nil {
		return nil, fmt.Errorf("failed to address totals cell: %w", err)
	}
	totals := []interface{}{
		"TOTAL", "", "", "", "", "", "",
		summary.TotalTaxableValue.InexactFloat64(), "",
		summary.TotalIGST.InexactFloat64(),
		summary.TotalCGST.InexactFloat64(),
		summary.TotalSGST.InexactFloat64(),
		summary.TotalTaxLiability.InexactFloat64(), "",
	}
	if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
		return nil, fmt.Errorf("failed to write totals row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
