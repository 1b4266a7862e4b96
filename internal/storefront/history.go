package storefront

import (
	"time"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

// UnknownItemName is shown for order items whose identifier is no longer in
// the catalog.
const UnknownItemName = "Unknown Item"

// itemResolver is what reconciliation needs from the catalog.
type itemResolver interface {
	Lookup(id string) (domain.MenuItem, bool)
}

// HistoryLine is one order item joined against the current catalog and
// repriced. Orders store no per-item price snapshot, so a catalog price
// change re-prices historical lines; only the order's aggregate amount is
// fixed.
type HistoryLine struct {
	ItemID   string
	Name     string
	Quantity int
	Options  *domain.OptionSelection
	BaseINR  int64
	AddonINR int64
	LineINR  int64
	Unknown  bool
}

type HistoryOrder struct {
	ID        string
	CreatedAt time.Time
	AmountINR int64
	Currency  string
	Lines     []HistoryLine
}

// ReconcileOrders joins persisted orders against the catalog. Items missing
// from the catalog become zero-priced "Unknown Item" rows instead of failing
// the view.
func ReconcileOrders(orders []domain.Order, catalog itemResolver) []HistoryOrder {
	out := make([]HistoryOrder, 0, len(orders))
	for _, order := range orders {
		ho := HistoryOrder{
			ID:        order.ID.Hex(),
			CreatedAt: order.CreatedAt,
			AmountINR: order.AmountINR,
			Currency:  order.Currency,
			Lines:     make([]HistoryLine, 0, len(order.Items)),
		}
		for _, item := range order.Items {
			line := HistoryLine{
				ItemID:   item.ID,
				Quantity: item.Quantity,
				Options:  item.Options,
			}
			if line.Quantity < 1 {
				line.Quantity = 1
			}

			menuItem, ok := catalog.Lookup(item.ID)
			if ok {
				line.Name = menuItem.Name
				line.BaseINR = BaseINR(menuItem.Price)
			} else {
				line.Name = UnknownItemName
				line.Unknown = true
			}
			line.AddonINR = AddonINR(item.Options)
			line.LineINR = (line.BaseINR + line.AddonINR) * int64(line.Quantity)

			ho.Lines = append(ho.Lines, line)
		}
		out = append(out, ho)
	}
	return out
}
