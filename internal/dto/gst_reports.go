package dto

import (
	"github.com/shopspring/decimal"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// ReportPeriod echoes the requested date range back in report responses.
type ReportPeriod struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// RCMSummaryResponse is the aggregate header of the RCM register.
type RCMSummaryResponse struct {
	TotalRecords      int             `json:"total_records"`
	TotalTaxableValue decimal.Decimal `json:"total_taxable_value"`
	TotalTaxLiability decimal.Decimal `json:"total_tax_liability"`
	TotalIGST         decimal.Decimal `json:"total_igst"`
	TotalCGST         decimal.Decimal `json:"total_cgst"`
	TotalSGST         decimal.Decimal `json:"total_sgst"`
}

// RCMRegisterResponse is the full reverse-charge register for a period.
type RCMRegisterResponse struct {
	Period  ReportPeriod       `json:"period"`
	Summary RCMSummaryResponse `json:"summary"`
	Data    []domain.RCMRecord `json:"data"`
}

// ITCRegisterResponse is the input-tax-credit register for a period.
type ITCRegisterResponse struct {
	Period  ReportPeriod       `json:"period"`
	Summary RCMSummaryResponse `json:"summary"`
	Data    []domain.ITCRecord `json:"data"`
}

// MasterSummaryResponse is the period GST position derived from posted
// ledger lines.
type MasterSummaryResponse struct {
	Period  ReportPeriod         `json:"period"`
	Summary domain.MasterSummary `json:"summary"`
}

// ToRCMSummaryResponse converts a domain.RCMSummary to its DTO.
func ToRCMSummaryResponse(s domain.RCMSummary) RCMSummaryResponse {
	return RCMSummaryResponse{
		TotalRecords:      s.TotalRecords,
		TotalTaxableValue: s.TotalTaxableValue,
		TotalTaxLiability: s.TotalTaxLiability,
		TotalIGST:         s.TotalIGST,
		TotalCGST:         s.TotalCGST,
		TotalSGST:         s.TotalSGST,
	}
}
