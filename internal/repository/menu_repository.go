package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database, collectionName string) *MenuRepository {
	return &MenuRepository{
		collection: db.Collection(collectionName),
	}
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []domain.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

// Upsert writes a menu item keyed by its slug id. Used by the seeder.
func (r *MenuRepository) Upsert(ctx context.Context, item domain.MenuItem) error {
	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"price":    item.Price,
		"category": item.Category,
		"img":      item.Img,
	}}
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"id": item.ID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert menu item %q: %w", item.ID, err)
	}
	return nil
}
