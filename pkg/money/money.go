// Package money centralises the shop's price arithmetic on exact decimals.
//
// Prices enter the system as plain numbers (the catalog is edited by hand),
// but every computation — discounting, line subtotals, order totals — runs
// on decimal.Decimal so 0.1+0.2 style drift never reaches a receipt.
// Rounding to 2 places happens only at the display edge.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountedUnit returns the effective unit price for a product: the listed
// price reduced by an integer percent discount. Discounts outside 1–100 leave
// the price untouched.
func DiscountedUnit(price float64, discountPct int) decimal.Decimal {
	p := decimal.NewFromFloat(price)
	if discountPct <= 0 || discountPct > 100 {
		return p
	}
	factor := decimal.NewFromInt(int64(100 - discountPct)).Div(hundred)
	return p.Mul(factor)
}

// LineSubtotal returns discounted unit price × quantity for one cart line.
func LineSubtotal(price float64, discountPct, quantity int) decimal.Decimal {
	return DiscountedUnit(price, discountPct).Mul(decimal.NewFromInt(int64(quantity)))
}

// UndiscountedLine returns listed price × quantity, for receipt breakdowns.
func UndiscountedLine(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// Display renders d rounded half away from zero to 2 decimal places,
// matching what shoppers see on the storefront.
func Display(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// DisplayFloat is Display for callers that still hold a float64.
func DisplayFloat(f float64) string {
	return Display(decimal.NewFromFloat(f))
}
