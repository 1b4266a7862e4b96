package service

import (
	"context"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

type menuStore interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
}

type MenuService struct {
	menu menuStore
}

func NewMenuService(menu menuStore) *MenuService {
	return &MenuService{menu: menu}
}

// List returns the catalog with every item carrying a usable wire id,
// falling back to the hex ObjectID for documents without a slug id.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ID = items[i].WireID()
	}
	return items, nil
}
