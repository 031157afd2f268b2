package seed

import (
	"context"
	"time"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/pkg/kvstore"
)

func init() {
	Register("products", seedProducts)
	Register("banners", seedBanners)
}

func seedProducts(ctx context.Context, store kvstore.Store) error {
	repo := repositories.NewCatalogRepository(store)

	existing, err := repo.Products(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	base := time.Now().UnixMilli()
	demo := []models.Product{
		{
			ID: base, Name: "Labial Matte Rosa", Price: 25000, Stock: 20,
			Category: "Labios", Discount: 10,
			Description:  "Labial de larga duración con acabado mate.",
			IsBestSeller: true,
		},
		{
			ID: base + 1, Name: "Serum Facial Vitamina C", Price: 68000, Stock: 12,
			Category:    "Rostro",
			Description: "Serum iluminador con vitamina C pura.",
		},
		{
			ID: base + 2, Name: "Máscara de Pestañas", Price: 32000, Stock: 15,
			Category: "Ojos", Discount: 20,
			Description: "Volumen extremo sin grumos.",
		},
		{
			ID: base + 3, Name: "Crema Hidratante Noche", Price: 54000, Stock: 8,
			Category:    "Rostro",
			Description: "Hidratación profunda con ácido hialurónico.",
		},
		{
			ID: base + 4, Name: "Paleta de Sombras Nude", Price: 89000, Stock: 6,
			Category:     "Ojos",
			Description:  "12 tonos neutros mate y shimmer.",
			IsBestSeller: true,
		},
	}

	return repo.SaveProducts(ctx, demo)
}

func seedBanners(ctx context.Context, store kvstore.Store) error {
	repo := repositories.NewCatalogRepository(store)

	existing, err := repo.Banners(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	base := time.Now().UnixMilli()
	demo := []models.Banner{
		{ID: base, Image: "/banners/bienvenida.jpg", Title: "Luna Rosa", Subtitle: "Belleza que ilumina"},
		{ID: base + 1, Image: "/banners/rebajas.jpg", Title: "Rebajas", Subtitle: "Hasta 40% en productos selectos"},
	}

	return repo.SaveBanners(ctx, demo)
}
