package storefront

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

type fakeResolver map[string]domain.MenuItem

func (f fakeResolver) Lookup(id string) (domain.MenuItem, bool) {
	item, ok := f[id]
	return item, ok
}

func TestReconcileOrders(t *testing.T) {
	catalog := fakeResolver{
		"latte": {ID: "latte", Name: "Latte", Price: 3.8},
	}
	opts := &domain.OptionSelection{Temperature: "Cold", Sweetness: "Normal", Milk: "Oat"}
	placed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	orders := []domain.Order{
		{
			ID:        primitive.NewObjectID(),
			AmountINR: 700,
			Currency:  "INR",
			CreatedAt: placed,
			Items: []domain.OrderItem{
				{ID: "latte", Quantity: 2, Options: opts},
			},
		},
	}

	history := ReconcileOrders(orders, catalog)
	require.Len(t, history, 1)
	assert.Equal(t, int64(700), history[0].AmountINR)
	assert.Equal(t, placed, history[0].CreatedAt)

	require.Len(t, history[0].Lines, 1)
	line := history[0].Lines[0]
	assert.Equal(t, "Latte", line.Name)
	assert.False(t, line.Unknown)
	assert.Equal(t, BaseINR(3.8), line.BaseINR)
	assert.Equal(t, int64(35), line.AddonINR)
	assert.Equal(t, (BaseINR(3.8)+35)*2, line.LineINR)
}

// An item identifier no longer in the catalog renders a zero-priced
// placeholder row rather than failing the view.
func TestReconcileOrdersUnknownItem(t *testing.T) {
	orders := []domain.Order{
		{
			ID: primitive.NewObjectID(),
			Items: []domain.OrderItem{
				{ID: "discontinued", Quantity: 1},
			},
		},
	}

	history := ReconcileOrders(orders, fakeResolver{})
	require.Len(t, history, 1)
	require.Len(t, history[0].Lines, 1)

	line := history[0].Lines[0]
	assert.Equal(t, UnknownItemName, line.Name)
	assert.True(t, line.Unknown)
	assert.Equal(t, int64(0), line.BaseINR)
	assert.Equal(t, int64(0), line.LineINR)
}

// Historical lines re-price against the current catalog; only the stored
// aggregate total is fixed.
func TestReconcileOrdersUsesCurrentCatalogPrice(t *testing.T) {
	order := domain.Order{
		ID:        primitive.NewObjectID(),
		AmountINR: 323, // paid when the latte cost 3.8
		Items: []domain.OrderItem{
			{ID: "latte", Quantity: 1},
		},
	}

	history := ReconcileOrders([]domain.Order{order}, fakeResolver{
		"latte": {ID: "latte", Name: "Latte", Price: 4.5},
	})

	line := history[0].Lines[0]
	assert.Equal(t, BaseINR(4.5), line.BaseINR)
	assert.Equal(t, int64(323), history[0].AmountINR)
}

func TestReconcileOrdersCoercesQuantity(t *testing.T) {
	orders := []domain.Order{
		{
			ID: primitive.NewObjectID(),
			Items: []domain.OrderItem{
				{ID: "latte", Quantity: 0},
			},
		},
	}

	history := ReconcileOrders(orders, fakeResolver{
		"latte": {ID: "latte", Name: "Latte", Price: 2.0},
	})
	assert.Equal(t, 1, history[0].Lines[0].Quantity)
}
