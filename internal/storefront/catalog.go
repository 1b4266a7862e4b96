package storefront

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

const refreshInterval = 30 * time.Second

// FallbackMenu is served when no API base URL is configured. It is never
// refreshed.
var FallbackMenu = []domain.MenuItem{
	{ID: "espresso", Name: "Espresso", Price: 2.5, Category: "Drinks", Img: "https://images.unsplash.com/photo-1512568400610-62da28bc8a13?q=80&w=600&auto=format&fit=crop"},
	{ID: "cappuccino", Name: "Cappuccino", Price: 3.5, Category: "Drinks", Img: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?q=80&w=600&auto=format&fit=crop"},
	{ID: "latte", Name: "Latte", Price: 3.8, Category: "Drinks", Img: "https://images.unsplash.com/photo-1521305916504-4a1121188589?q=80&w=600&auto=format&fit=crop"},
	{ID: "americano", Name: "Americano", Price: 3.0, Category: "Drinks", Img: "https://images.unsplash.com/photo-1503481766315-7a586b20f66c?q=80&w=600&auto=format&fit=crop"},
	{ID: "mocha", Name: "Mocha", Price: 4.2, Category: "Drinks", Img: "https://images.unsplash.com/photo-1521017432531-fbd92d3255a0?q=80&w=600&auto=format&fit=crop"},
	{ID: "coldbrew", Name: "Cold Brew", Price: 3.9, Category: "Drinks", Img: "https://images.unsplash.com/photo-1527515637462-cff94eecc1ac?q=80&w=600&auto=format&fit=crop"},
	{ID: "matcha", Name: "Matcha Latte", Price: 4.0, Category: "Drinks", Img: "https://images.unsplash.com/photo-1511920170033-f8396924c348?q=80&w=600&auto=format&fit=crop"},
}

// Catalog holds the client-local snapshot of the menu. A failed refresh keeps
// the previous snapshot and is only logged. Overlapping refreshes resolve by
// request recency: a response is applied only if no newer request has been
// initiated since it started.
type Catalog struct {
	client *Client
	logger *zap.Logger

	mu        sync.Mutex
	items     []domain.MenuItem
	latestSeq uint64

	wake chan struct{}
}

func NewCatalog(client *Client, logger *zap.Logger) *Catalog {
	c := &Catalog{
		client: client,
		logger: logger,
		wake:   make(chan struct{}, 1),
	}
	if !client.Configured() {
		c.items = append([]domain.MenuItem(nil), FallbackMenu...)
	}
	return c
}

// Items returns the current snapshot in catalog order.
func (c *Catalog) Items() []domain.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.MenuItem(nil), c.items...)
}

// Lookup finds a menu item by identifier.
func (c *Catalog) Lookup(id string) (domain.MenuItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

// Refresh fetches the menu once. Fire-and-forget: failures never surface to
// the user.
func (c *Catalog) Refresh(ctx context.Context) {
	if !c.client.Configured() {
		return
	}

	c.mu.Lock()
	c.latestSeq++
	seq := c.latestSeq
	c.mu.Unlock()

	items, err := c.client.FetchMenu(ctx)
	if err != nil {
		c.logger.Warn("Menu refresh failed; keeping previous snapshot", zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.latestSeq {
		// A newer refresh started while this one was in flight.
		c.logger.Debug("Discarding stale menu response", zap.Uint64("seq", seq))
		return
	}
	c.items = items
	c.logger.Debug("Menu refreshed", zap.Int("items", len(items)))
}

// WakeUp requests an immediate refresh, used when the storefront returns to
// the foreground.
func (c *Catalog) WakeUp() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Run performs the initial load and then refreshes on a fixed interval and on
// WakeUp, until ctx is done.
func (c *Catalog) Run(ctx context.Context) {
	if !c.client.Configured() {
		return
	}

	c.Refresh(ctx)

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx)
		case <-c.wake:
			c.Refresh(ctx)
		}
	}
}
