package gst

import (
	"github.com/shopspring/decimal"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// CurrencyPrecision is the ledger currency precision; all computed tax
// components are rounded to this many decimal places, half up.
const CurrencyPrecision = 2

var oneHundred = decimal.NewFromInt(100)

// Calculator derives GST components from raw transaction amounts. The home
// state code is injected once at construction (loaded from configuration at
// process start, immutable thereafter) and never hardcoded here.
type Calculator struct {
	homeStateCode string
}

// NewCalculator returns a Calculator for the given home state code.
func NewCalculator(homeStateCode string) Calculator {
	return Calculator{homeStateCode: homeStateCode}
}

// HomeStateCode returns the configured home state code.
func (c Calculator) HomeStateCode() string {
	return c.homeStateCode
}

// Round rounds an amount to the ledger currency precision, half up.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPrecision)
}

// SplitByJurisdiction splits the GST on a taxable value between IGST and
// CGST/SGST based on the supplier's state code. Inter-state supply attracts
// IGST only; intra-state supply splits the liability 50/50 between CGST and
// SGST. State-code comparison is plain string equality.
//
// The intra-state split rounds CGST and assigns the remainder of the total
// liability to SGST, so CGST+SGST always equals the rounded liability and a
// journal built from the components still balances.
func (c Calculator) SplitByJurisdiction(taxableValue, rate decimal.Decimal, supplierStateCode string) domain.TaxBreakup {
	breakup := domain.TaxBreakup{
		TaxableValue: taxableValue,
		Rate:         rate,
		IGST:         decimal.Zero,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
	}

	totalTax := Round(taxableValue.Mul(rate).Div(oneHundred))
	if totalTax.IsZero() {
		return breakup
	}

	if supplierStateCode != c.homeStateCode {
		breakup.IGST = totalTax
		return breakup
	}

	breakup.CGST = Round(totalTax.Div(decimal.NewFromInt(2)))
	breakup.SGST = totalTax.Sub(breakup.CGST)
	return breakup
}

// BackCalculateFromInclusive decomposes a tax-inclusive total into its base
// and tax portions: tax = total - total/(1+rate/100). The tax portion is
// rounded and the base absorbs the remainder, so base+tax == total exactly.
func BackCalculateFromInclusive(total, rate decimal.Decimal) (base, tax decimal.Decimal) {
	if rate.IsZero() {
		return total, decimal.Zero
	}
	divisor := decimal.NewFromInt(1).Add(rate.Div(oneHundred))
	tax = Round(total.Sub(total.Div(divisor)))
	base = total.Sub(tax)
	return base, tax
}
