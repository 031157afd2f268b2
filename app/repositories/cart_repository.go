package repositories

import (
	"context"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/pkg/kvstore"
)

// CartRepository persists the shopper's cart.
type CartRepository struct {
	store kvstore.Store
}

func NewCartRepository(store kvstore.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Load returns the stored cart, empty when nothing has been saved yet.
func (r *CartRepository) Load(ctx context.Context) ([]models.CartItem, error) {
	return readCollection[models.CartItem](ctx, r.store, keyCart)
}

// Save replaces the stored cart.
func (r *CartRepository) Save(ctx context.Context, items []models.CartItem) error {
	return writeCollection(ctx, r.store, keyCart, items)
}

// Clear persists an empty cart.
func (r *CartRepository) Clear(ctx context.Context) error {
	return writeCollection(ctx, r.store, keyCart, []models.CartItem{})
}
