package repositories

import (
	"context"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/pkg/kvstore"
)

// OrderRepository persists the append-only order log.
type OrderRepository struct {
	store kvstore.Store
}

func NewOrderRepository(store kvstore.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// All returns every recorded order, oldest first.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	return readCollection[models.Order](ctx, r.store, keyOrders)
}

// Append adds one order to the log. Read-append-write on a single key: if the
// write fails the stored log is untouched.
func (r *OrderRepository) Append(ctx context.Context, order models.Order) error {
	orders, err := r.All(ctx)
	if err != nil {
		return err
	}
	return writeCollection(ctx, r.store, keyOrders, append(orders, order))
}
