package domain

import "github.com/shopspring/decimal"

// TaxBreakup holds the GST components derived from a raw transaction amount.
// Invariant: IGST > 0 implies CGST == 0 and SGST == 0, and vice versa.
// The intra-state split is always 50/50 between CGST and SGST up to rounding;
// any rounding remainder is absorbed by SGST so that CGST+SGST equals the
// nominal liability exactly.
type TaxBreakup struct {
	TaxableValue decimal.Decimal `json:"taxableValue"`
	Rate         decimal.Decimal `json:"rate"` // Percent, e.g. 18 for 18%
	IGST         decimal.Decimal `json:"igst"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
}

// TotalTax returns the total GST liability of the breakup.
func (t TaxBreakup) TotalTax() decimal.Decimal {
	return t.IGST.Add(t.CGST).Add(t.SGST)
}

// IsInterState reports whether the breakup was computed for an
// inter-state supply.
func (t TaxBreakup) IsInterState() bool {
	return t.IGST.IsPositive()
}
