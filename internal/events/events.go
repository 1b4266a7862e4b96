package events

import (
	"time"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

// OrderCreatedEvent is published after an order has been persisted. Consumers
// (kitchen display, analytics) are eventually consistent; a publish failure
// never fails the order.
type OrderCreatedEvent struct {
	EventID   string             `json:"event_id"`
	OrderID   string             `json:"order_id"`
	UserID    string             `json:"user_id"`
	AmountINR int64              `json:"amount_inr"`
	Currency  string             `json:"currency"`
	Items     []domain.OrderItem `json:"items"`
	Timestamp time.Time          `json:"timestamp"`
	RequestID string             `json:"request_id"`
}
