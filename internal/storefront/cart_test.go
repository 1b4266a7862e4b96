package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

var (
	latte = domain.MenuItem{ID: "latte", Name: "Latte", Price: 3.8, Category: "Drinks"}
	mocha = domain.MenuItem{ID: "mocha", Name: "Mocha", Price: 4.2, Category: "Drinks"}

	hotRegular = domain.DefaultOptions()
	coldOat    = domain.OptionSelection{Temperature: "Cold", Sweetness: "Normal", Milk: "Oat"}
)

func TestCartAddMergesIdenticalLines(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.Add(latte, hotRegular)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Lines()[0].Quantity)
}

func TestCartAddDistinctOptionsMakeDistinctLines(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.Add(latte, coldOat)

	require.Equal(t, 2, cart.Len())
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
	assert.Equal(t, 1, cart.Lines()[1].Quantity)
}

func TestCartLineCapturesPriceAtAddTime(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, coldOat)

	line := cart.Lines()[0]
	assert.Equal(t, latte.Name, line.Name)
	assert.Equal(t, latte.Price, line.BasePrice)
	assert.Equal(t, PriceOf(latte.Price, &coldOat), line.UnitPriceINR)
}

func TestCartAdjustQuantityRemovesAtZero(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.Add(latte, hotRegular)
	cart.Add(mocha, hotRegular)

	countBefore, _ := cart.Totals()
	cart.AdjustQuantity(0, -2)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "mocha", cart.Lines()[0].ItemID)

	countAfter, _ := cart.Totals()
	assert.Equal(t, countBefore-2, countAfter)
}

func TestCartAdjustQuantityInPlace(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.AdjustQuantity(0, 3)

	assert.Equal(t, 4, cart.Lines()[0].Quantity)
	cart.AdjustQuantity(0, -1)
	assert.Equal(t, 3, cart.Lines()[0].Quantity)
}

func TestCartAdjustQuantityPanicsOnBadIndex(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)

	assert.Panics(t, func() { cart.AdjustQuantity(1, 1) })
	assert.Panics(t, func() { cart.AdjustQuantity(-1, 1) })
}

func TestCartTotalsMatchIndependentSum(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.Add(latte, hotRegular)
	cart.Add(mocha, coldOat)
	cart.AdjustQuantity(1, 2)
	cart.EditOptions(0, coldOat)

	var wantCount int
	var wantTotal int64
	for _, line := range cart.Lines() {
		wantCount += line.Quantity
		wantTotal += line.UnitPriceINR * int64(line.Quantity)
	}

	count, total := cart.Totals()
	assert.Equal(t, wantCount, count)
	assert.Equal(t, wantTotal, total)
}

// Two lines, qty 2 @ 100 and qty 1 @ 250, give count 3 and total 450.
func TestCartTotalsScenario(t *testing.T) {
	cart := NewCart()
	cart.lines = []*CartLine{
		{ItemID: "a", UnitPriceINR: 100, Quantity: 2},
		{ItemID: "b", UnitPriceINR: 250, Quantity: 1},
	}

	count, total := cart.Totals()
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(450), total)
}

func TestCartEditOptionsReprices(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.AdjustQuantity(0, 1)

	cart.EditOptions(0, coldOat)

	line := cart.Lines()[0]
	assert.Equal(t, coldOat, line.Options)
	assert.Equal(t, PriceOf(latte.Price, &coldOat), line.UnitPriceINR)
	assert.Equal(t, 2, line.Quantity, "quantity unchanged by edit")
}

// Editing a line into the same options as another line keeps both rows;
// merging only happens on Add.
func TestCartEditOptionsDoesNotRemerge(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.Add(latte, coldOat)

	cart.EditOptions(1, hotRegular)

	require.Equal(t, 2, cart.Len())
	assert.Equal(t, cart.Lines()[0].Options, cart.Lines()[1].Options)

	// A subsequent Add merges into the first matching row.
	cart.Add(latte, hotRegular)
	require.Equal(t, 2, cart.Len())
	assert.Equal(t, 2, cart.Lines()[0].Quantity)
	assert.Equal(t, 1, cart.Lines()[1].Quantity)
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart()
	cart.Add(latte, hotRegular)
	cart.Add(mocha, hotRegular)

	cart.Remove(0)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "mocha", cart.Lines()[0].ItemID)

	cart.Clear()
	count, total := cart.Totals()
	assert.Equal(t, 0, count)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, 0, cart.Len())

	// A removed identity no longer merges.
	cart.Add(latte, hotRegular)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCartInsertionOrderPreserved(t *testing.T) {
	cart := NewCart()
	cart.Add(mocha, hotRegular)
	cart.Add(latte, hotRegular)
	cart.Add(mocha, hotRegular) // merge, must not reorder

	lines := cart.Lines()
	require.Equal(t, 2, cart.Len())
	assert.Equal(t, "mocha", lines[0].ItemID)
	assert.Equal(t, "latte", lines[1].ItemID)
}
