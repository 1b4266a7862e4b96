package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

type fakeMenuStore struct {
	items []domain.MenuItem
}

func (f *fakeMenuStore) List(ctx context.Context) ([]domain.MenuItem, error) {
	return f.items, nil
}

func TestMenuListWireIDs(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeMenuStore{items: []domain.MenuItem{
		{ID: "latte", Name: "Latte", Price: 200},
		{OID: oid, Name: "Special", Price: 300},
	}}

	items, err := NewMenuService(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "latte", items[0].ID, "slug id preserved")
	assert.Equal(t, oid.Hex(), items[1].ID, "ObjectID hex used when no slug id")
}
