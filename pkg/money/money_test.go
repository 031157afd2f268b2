package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunarosa/shop/pkg/money"
)

func TestDiscountedUnit(t *testing.T) {
	assert.Equal(t, "8.00", money.Display(money.DiscountedUnit(10.00, 20)))
	assert.Equal(t, "10.00", money.Display(money.DiscountedUnit(10.00, 0)))
	assert.Equal(t, "0.00", money.Display(money.DiscountedUnit(10.00, 100)))

	// Out-of-range discounts leave the price untouched.
	assert.Equal(t, "10.00", money.Display(money.DiscountedUnit(10.00, -5)))
	assert.Equal(t, "10.00", money.Display(money.DiscountedUnit(10.00, 120)))
}

func TestLineSubtotal(t *testing.T) {
	// 20% off 10.00, three units → 24.00 exactly.
	assert.Equal(t, "24.00", money.Display(money.LineSubtotal(10.00, 20, 3)))

	// No float drift: 0.1 priced item, 3 units.
	assert.Equal(t, "0.30", money.Display(money.LineSubtotal(0.10, 0, 3)))
}

func TestUndiscountedLine(t *testing.T) {
	assert.Equal(t, "30.00", money.Display(money.UndiscountedLine(10.00, 3)))
}

func TestDisplayRounding(t *testing.T) {
	// 15% off 19.99 = 16.9915 → 16.99 on display.
	assert.Equal(t, "16.99", money.Display(money.DiscountedUnit(19.99, 15)))
	assert.Equal(t, "19.99", money.DisplayFloat(19.99))
}
