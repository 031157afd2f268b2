package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/services"
)

func TestBrowseHidesOutOfStock(t *testing.T) {
	soldOut := serum()
	soldOut.Stock = 0
	f := newShopFixture(t, lipstick(), soldOut)

	products, err := f.shop.Browse(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, int64(1), products[0].ID)
}

func TestBrowseSearchMatchesNameAndDescription(t *testing.T) {
	scented := serum()
	scented.Description = "Con extracto de rosas"
	f := newShopFixture(t, lipstick(), scented)

	// Case-insensitive match on name.
	byName, err := f.shop.Browse(context.Background(), "LABIAL", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, int64(1), byName[0].ID)

	// Match on description.
	byDesc, err := f.shop.Browse(context.Background(), "rosas", "")
	require.NoError(t, err)
	require.Len(t, byDesc, 1)
	require.Equal(t, int64(2), byDesc[0].ID)
}

func TestBrowseFiltersByCategory(t *testing.T) {
	f := newShopFixture(t, lipstick(), serum())

	products, err := f.shop.Browse(context.Background(), "", "Rostro")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Rostro", products[0].Category)
}

func TestCategoriesAreDistinctAndOrdered(t *testing.T) {
	second := serum()
	third := lipstick()
	third.ID = 3
	f := newShopFixture(t, lipstick(), second, third)

	categories, err := f.shop.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Labios", "Rostro"}, categories)
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	f := newShopFixture(t)

	created, err := f.shop.CreateProduct(ctx, models.Product{
		Name: "Base Líquida", Price: 52000, Stock: 8, Category: "Rostro",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.Stock = 6
	updated, err := f.shop.UpdateProduct(ctx, created)
	require.NoError(t, err)
	require.Equal(t, 6, updated.Stock)

	require.NoError(t, f.shop.DeleteProduct(ctx, created.ID))

	products, err := f.shop.Products(ctx)
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestUpdateUnknownProduct(t *testing.T) {
	f := newShopFixture(t)
	_, err := f.shop.UpdateProduct(context.Background(), models.Product{ID: 99, Name: "Nope"})
	require.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestDeleteUnknownProduct(t *testing.T) {
	f := newShopFixture(t, lipstick())
	err := f.shop.DeleteProduct(context.Background(), 99)
	require.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestBannerLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newShopFixture(t)

	banner, err := f.shop.CreateBanner(ctx, models.Banner{
		Image: "https://cdn.example.com/sale.jpg", Title: "Rebajas", Subtitle: "Hasta 40%",
	})
	require.NoError(t, err)
	require.NotZero(t, banner.ID)

	banners, err := f.shop.Banners(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)

	require.NoError(t, f.shop.DeleteBanner(ctx, banner.ID))

	banners, err = f.shop.Banners(ctx)
	require.NoError(t, err)
	require.Empty(t, banners)
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	f := newShopFixture(t, lipstick())

	favorites, err := f.shop.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, favorites)

	// Toggling again removes it.
	favorites, err = f.shop.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, favorites)
}
