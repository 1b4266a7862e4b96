package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the persisted record of a placed order. Orders are immutable once
// created; there is no update or delete path.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Items     []OrderItem        `bson:"items" json:"items"`
	AmountINR int64              `bson:"amountInr" json:"amountInr"`
	Currency  string             `bson:"currency" json:"currency"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderItem stores what was submitted: the catalog identifier, a positive
// quantity, and the option triple. Prices are not snapshotted per item; the
// order's aggregate amount is the only stored total.
type OrderItem struct {
	ID       string           `bson:"id" json:"id"`
	Quantity int              `bson:"quantity" json:"quantity"`
	Options  *OptionSelection `bson:"options,omitempty" json:"options,omitempty"`
}

type CreateOrderRequest struct {
	Items     []OrderItem `json:"items" binding:"required,min=1"`
	AmountINR int64       `json:"amountInr"`
	Currency  string      `json:"currency"`
}

type CreateOrderResponse struct {
	ID string `json:"id"`
}
