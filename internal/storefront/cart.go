package storefront

import (
	"fmt"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

// lineKey is the identity of a cart line: the item plus the full option
// tuple. Two additions merge exactly when their keys are equal.
type lineKey struct {
	itemID      string
	temperature string
	sweetness   string
	milk        string
}

func keyOf(itemID string, opts domain.OptionSelection) lineKey {
	return lineKey{
		itemID:      itemID,
		temperature: opts.Temperature,
		sweetness:   opts.Sweetness,
		milk:        opts.Milk,
	}
}

// CartLine is one customized entry. Name and BasePrice are captured at
// add-time and not re-fetched; UnitPriceINR is derived from them.
type CartLine struct {
	ItemID       string
	Name         string
	BasePrice    float64
	UnitPriceINR int64
	Quantity     int
	Options      domain.OptionSelection
}

// Cart is the session's ordered collection of lines. Line order is insertion
// order and user-visible. At most one line exists per identity key. Not safe
// for concurrent use; a session mutates it from a single goroutine.
type Cart struct {
	lines []*CartLine
	index map[lineKey]*CartLine
}

func NewCart() *Cart {
	return &Cart{index: make(map[lineKey]*CartLine)}
}

// Add merges into the existing line for (item, options) or appends a new line
// with quantity 1. Never fails.
func (c *Cart) Add(item domain.MenuItem, opts domain.OptionSelection) {
	key := keyOf(item.ID, opts)
	if line, ok := c.index[key]; ok {
		line.Quantity++
		return
	}
	line := &CartLine{
		ItemID:       item.ID,
		Name:         item.Name,
		BasePrice:    item.Price,
		UnitPriceINR: PriceOf(item.Price, &opts),
		Quantity:     1,
		Options:      opts,
	}
	c.lines = append(c.lines, line)
	c.index[key] = line
}

// AdjustQuantity applies delta to the line's quantity, removing the line when
// the result drops to zero or below. The index must reference an existing
// line; anything else is a programming error.
func (c *Cart) AdjustQuantity(lineIndex, delta int) {
	line := c.at(lineIndex)
	line.Quantity += delta
	if line.Quantity <= 0 {
		c.removeAt(lineIndex)
	}
}

// EditOptions replaces the line's options and reprices it from the captured
// base price. Quantity is unchanged. The edited line stays a distinct row
// even when the new options match another line; merging happens only on Add.
func (c *Cart) EditOptions(lineIndex int, opts domain.OptionSelection) {
	line := c.at(lineIndex)
	line.Options = opts
	line.UnitPriceINR = PriceOf(line.BasePrice, &opts)
	c.reindex()
}

// Remove deletes the line unconditionally.
func (c *Cart) Remove(lineIndex int) {
	c.at(lineIndex)
	c.removeAt(lineIndex)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[lineKey]*CartLine)
}

// Totals recomputes the item count and total amount from the current lines.
func (c *Cart) Totals() (itemCount int, totalINR int64) {
	for _, line := range c.lines {
		itemCount += line.Quantity
		totalINR += line.UnitPriceINR * int64(line.Quantity)
	}
	return itemCount, totalINR
}

// Lines returns a copy of the current lines in display order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) at(lineIndex int) *CartLine {
	if lineIndex < 0 || lineIndex >= len(c.lines) {
		panic(fmt.Sprintf("cart: line index %d out of range (len %d)", lineIndex, len(c.lines)))
	}
	return c.lines[lineIndex]
}

func (c *Cart) removeAt(lineIndex int) {
	c.lines = append(c.lines[:lineIndex], c.lines[lineIndex+1:]...)
	c.reindex()
}

// reindex rebuilds the identity map. When edits leave two lines with the same
// key, the first line in display order wins Add-merge lookups, matching the
// first-match scan the merge rule is defined by.
func (c *Cart) reindex() {
	c.index = make(map[lineKey]*CartLine, len(c.lines))
	for _, line := range c.lines {
		key := keyOf(line.ItemID, line.Options)
		if _, ok := c.index[key]; !ok {
			c.index[key] = line
		}
	}
}
