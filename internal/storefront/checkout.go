package storefront

import (
	"context"

	"github.com/google/uuid"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

var ErrEmptyCart = &APIError{Kind: KindValidation, Message: "cart is empty"}

// Receipt confirms a placed order. Simulated marks receipts generated locally
// when no remote API is configured, so callers can tell them apart from
// server-assigned ones.
type Receipt struct {
	OrderID   string
	Simulated bool
}

// PlaceOrder submits the cart as an order. The empty-cart check happens
// before any network activity. On success the cart is cleared; on failure it
// is left untouched so the user can retry. With no API configured, a
// simulated receipt is returned and the cart is cleared anyway.
func (c *Client) PlaceOrder(ctx context.Context, cart *Cart) (*Receipt, error) {
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	if !c.Configured() {
		cart.Clear()
		return &Receipt{OrderID: uuid.New().String()[:8], Simulated: true}, nil
	}

	_, totalINR := cart.Totals()
	lines := cart.Lines()
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		opts := line.Options
		items = append(items, domain.OrderItem{
			ID:       line.ItemID,
			Quantity: line.Quantity,
			Options:  &opts,
		})
	}

	resp, err := c.CreateOrder(ctx, domain.CreateOrderRequest{
		Items:     items,
		AmountINR: totalINR,
		Currency:  "INR",
	})
	if err != nil {
		return nil, err
	}

	cart.Clear()
	return &Receipt{OrderID: resp.ID}, nil
}
