package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atithihms/hotel_books_app/internal/utils/gst"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSplitByJurisdiction_IntraState(t *testing.T) {
	calc := gst.NewCalculator("29")

	b := calc.SplitByJurisdiction(dec("10000"), dec("18"), "29")

	assert.True(t, b.CGST.Equal(dec("900.00")), "cgst: %s", b.CGST)
	assert.True(t, b.SGST.Equal(dec("900.00")), "sgst: %s", b.SGST)
	assert.True(t, b.IGST.IsZero(), "igst: %s", b.IGST)
	assert.True(t, b.TotalTax().Equal(dec("1800.00")))
	assert.False(t, b.IsInterState())
}

func TestSplitByJurisdiction_InterState(t *testing.T) {
	calc := gst.NewCalculator("29")

	b := calc.SplitByJurisdiction(dec("10000"), dec("18"), "27")

	assert.True(t, b.IGST.Equal(dec("1800.00")), "igst: %s", b.IGST)
	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, b.IsInterState())
}

func TestSplitByJurisdiction_ZeroRate(t *testing.T) {
	calc := gst.NewCalculator("29")

	b := calc.SplitByJurisdiction(dec("500"), decimal.Zero, "29")

	assert.True(t, b.IGST.IsZero())
	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
}

// The intra-state split halves the liability; when the rounded total is an
// odd number of paise the remainder lands on SGST so the components still sum
// to the liability exactly.
func TestSplitByJurisdiction_OddPaiseRemainder(t *testing.T) {
	calc := gst.NewCalculator("29")

	// 5% of 100.30 = 5.015 -> rounds to 5.02; half = 2.51, remainder 2.51
	b := calc.SplitByJurisdiction(dec("100.30"), dec("5"), "29")

	total := gst.Round(dec("100.30").Mul(dec("5")).Div(dec("100")))
	assert.True(t, b.CGST.Add(b.SGST).Equal(total),
		"cgst %s + sgst %s != total %s", b.CGST, b.SGST, total)
}

func TestSplitByJurisdiction_ExclusivityProperty(t *testing.T) {
	calc := gst.NewCalculator("29")
	values := []string{"0.01", "1", "99.99", "1050", "123456.78"}
	rates := []string{"0", "5", "12", "18", "28"}
	states := []string{"29", "27", "07", ""}

	for _, v := range values {
		for _, r := range rates {
			for _, st := range states {
				b := calc.SplitByJurisdiction(dec(v), dec(r), st)
				if b.IGST.IsPositive() {
					assert.True(t, b.CGST.IsZero() && b.SGST.IsZero(),
						"igst set but cgst/sgst nonzero for %s@%s from %q", v, r, st)
				}
				if b.CGST.IsPositive() || b.SGST.IsPositive() {
					assert.True(t, b.IGST.IsZero(),
						"cgst/sgst set but igst nonzero for %s@%s from %q", v, r, st)
				}
			}
		}
	}
}

func TestBackCalculateFromInclusive(t *testing.T) {
	base, tax := gst.BackCalculateFromInclusive(dec("1050.00"), dec("5"))

	assert.True(t, base.Equal(dec("1000.00")), "base: %s", base)
	assert.True(t, tax.Equal(dec("50.00")), "tax: %s", tax)
}

func TestBackCalculateFromInclusive_ZeroRate(t *testing.T) {
	base, tax := gst.BackCalculateFromInclusive(dec("750.50"), decimal.Zero)

	assert.True(t, base.Equal(dec("750.50")))
	assert.True(t, tax.IsZero())
}

// base + tax must reassemble the inclusive total for any (total, rate).
func TestBackCalculateFromInclusive_SumProperty(t *testing.T) {
	totals := []string{"0.01", "1", "999.99", "1050", "118", "54321.10"}
	rates := []string{"0", "5", "12", "18", "28", "2.5"}

	for _, tv := range totals {
		for _, rv := range rates {
			total := dec(tv)
			base, tax := gst.BackCalculateFromInclusive(total, dec(rv))
			require.True(t, base.Add(tax).Equal(total),
				"base %s + tax %s != total %s at rate %s", base, tax, total, rv)
			assert.False(t, tax.IsNegative())
		}
	}
}
