package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a catalog entry. Documents in the menu collection may carry a
// slug id of their own; when they don't, the hex ObjectID stands in for it.
type MenuItem struct {
	OID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       string             `bson:"id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Category string             `bson:"category" json:"category"`
	Img      string             `bson:"img" json:"img"`
}

// WireID returns the identifier exposed on the /menu endpoint.
func (m MenuItem) WireID() string {
	if m.ID != "" {
		return m.ID
	}
	if !m.OID.IsZero() {
		return m.OID.Hex()
	}
	return ""
}
