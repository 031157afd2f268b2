package repositories

import (
	"context"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/pkg/kvstore"
)

// Collection names under the store prefix.
const (
	keyProducts  = "products"
	keyBanners   = "banners"
	keyCart      = "cart"
	keyOrders    = "orders"
	keyFavorites = "favorites"
)

// CatalogRepository persists the product and banner collections.
type CatalogRepository struct {
	store kvstore.Store
}

func NewCatalogRepository(store kvstore.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Products returns the full product list in stored order.
func (r *CatalogRepository) Products(ctx context.Context) ([]models.Product, error) {
	return readCollection[models.Product](ctx, r.store, keyProducts)
}

// SaveProducts replaces the stored product list.
func (r *CatalogRepository) SaveProducts(ctx context.Context, products []models.Product) error {
	return writeCollection(ctx, r.store, keyProducts, products)
}

// Banners returns the promotional banners in stored order.
func (r *CatalogRepository) Banners(ctx context.Context) ([]models.Banner, error) {
	return readCollection[models.Banner](ctx, r.store, keyBanners)
}

// SaveBanners replaces the stored banner list.
func (r *CatalogRepository) SaveBanners(ctx context.Context, banners []models.Banner) error {
	return writeCollection(ctx, r.store, keyBanners, banners)
}
