package services

import (
	"context"
	"strings"
	"time"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/pkg/collection"
	"github.com/lunarosa/shop/pkg/logger"
)

// CatalogService serves storefront browsing and the admin's catalog CRUD.
type CatalogService struct {
	catalog  *repositories.CatalogRepository
	settings *repositories.SettingsRepository
}

func NewCatalogService(catalog *repositories.CatalogRepository, settings *repositories.SettingsRepository) *CatalogService {
	return &CatalogService{catalog: catalog, settings: settings}
}

// Browse returns in-stock products matching the search term (name or
// description, case-insensitive) and category. Empty arguments match
// everything. Admin views use Products instead, which hides nothing.
func (s *CatalogService) Browse(ctx context.Context, search, category string) ([]models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	return collection.Filter(products, func(p models.Product) bool {
		if !p.InStock() {
			return false
		}
		if category != "" && p.Category != category {
			return false
		}
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	}), nil
}

// Products returns the full catalog, out-of-stock items included.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, &PersistenceError{Step: "load products", Err: err}
	}
	return products, nil
}

// Categories returns the distinct non-empty categories in catalog order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	names := collection.Map(products, func(p models.Product) string { return p.Category })
	return collection.Unique(collection.Filter(names, func(c string) bool { return c != "" })), nil
}

// CreateProduct assigns an ID and appends the product to the catalog.
func (s *CatalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return models.Product{}, err
	}

	product.ID = time.Now().UnixMilli()
	products = append(products, product)
	if err := s.catalog.SaveProducts(ctx, products); err != nil {
		return models.Product{}, &PersistenceError{Step: "save products", Err: err}
	}

	logger.Info("catalog: product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// UpdateProduct overwrites the product with the matching ID.
func (s *CatalogService) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return models.Product{}, err
	}

	found := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			found = true
			break
		}
	}
	if !found {
		return models.Product{}, ErrProductNotFound
	}

	if err := s.catalog.SaveProducts(ctx, products); err != nil {
		return models.Product{}, &PersistenceError{Step: "save products", Err: err}
	}
	return product, nil
}

// DeleteProduct removes the product with the given ID. Deleting an unknown
// ID is an error so the admin notices a stale view.
func (s *CatalogService) DeleteProduct(ctx context.Context, productID int64) error {
	products, err := s.Products(ctx)
	if err != nil {
		return err
	}

	kept := collection.Filter(products, func(p models.Product) bool { return p.ID != productID })
	if len(kept) == len(products) {
		return ErrProductNotFound
	}

	if err := s.catalog.SaveProducts(ctx, kept); err != nil {
		return &PersistenceError{Step: "save products", Err: err}
	}

	logger.Info("catalog: product deleted", "product_id", productID)
	return nil
}

// Banners returns the promotional slides.
func (s *CatalogService) Banners(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.catalog.Banners(ctx)
	if err != nil {
		return nil, &PersistenceError{Step: "load banners", Err: err}
	}
	return banners, nil
}

// CreateBanner assigns an ID and appends the banner.
func (s *CatalogService) CreateBanner(ctx context.Context, banner models.Banner) (models.Banner, error) {
	banners, err := s.Banners(ctx)
	if err != nil {
		return models.Banner{}, err
	}

	banner.ID = time.Now().UnixMilli()
	banners = append(banners, banner)
	if err := s.catalog.SaveBanners(ctx, banners); err != nil {
		return models.Banner{}, &PersistenceError{Step: "save banners", Err: err}
	}
	return banner, nil
}

// DeleteBanner removes the banner with the given ID; unknown IDs are a no-op.
func (s *CatalogService) DeleteBanner(ctx context.Context, bannerID int64) error {
	banners, err := s.Banners(ctx)
	if err != nil {
		return err
	}

	kept := collection.Filter(banners, func(b models.Banner) bool { return b.ID != bannerID })
	if err := s.catalog.SaveBanners(ctx, kept); err != nil {
		return &PersistenceError{Step: "save banners", Err: err}
	}
	return nil
}

// ToggleFavorite adds the product to the favorites set, or removes it if
// already present, and returns the updated set.
func (s *CatalogService) ToggleFavorite(ctx context.Context, productID int64) ([]int64, error) {
	favorites, err := s.settings.Favorites(ctx)
	if err != nil {
		return nil, &PersistenceError{Step: "load favorites", Err: err}
	}

	updated := collection.Filter(favorites, func(id int64) bool { return id != productID })
	if len(updated) == len(favorites) {
		updated = append(updated, productID)
	}

	if err := s.settings.SaveFavorites(ctx, updated); err != nil {
		return nil, &PersistenceError{Step: "save favorites", Err: err}
	}
	return updated, nil
}

// Favorites returns the favorited product IDs.
func (s *CatalogService) Favorites(ctx context.Context) ([]int64, error) {
	favorites, err := s.settings.Favorites(ctx)
	if err != nil {
		return nil, &PersistenceError{Step: "load favorites", Err: err}
	}
	return favorites, nil
}
