package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/pkg/kvstore"
)

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()

	products := []models.Product{
		{ID: 1, Name: "Labial Matte", Price: 25000, Stock: 10, Category: "Labios", Discount: 20},
		{ID: 2, Name: "Serum Facial", Price: 68000, Stock: 4, Category: "Rostro"},
	}
	require.NoError(t, writeCollection(ctx, store, keyProducts, products))

	got, err := readCollection[models.Product](ctx, store, keyProducts)
	require.NoError(t, err)
	require.Equal(t, products, got)

	// The stored value carries the envelope, not a bare array.
	raw := store.Snapshot()[storageKey(keyProducts)]
	require.True(t, strings.HasPrefix(raw, `{"version":1,`), "stored value: %s", raw)
}

func TestReadMissingKeyIsEmptyCollection(t *testing.T) {
	got, err := readCollection[models.Order](context.Background(), kvstore.NewMemory(), keyOrders)
	if err != nil {
		t.Fatalf("missing key should not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(got))
	}
}

func TestReadLegacyBareArray(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	legacy := `[{"id":7,"name":"Mascara","price":32000,"stock":5,"category":"Ojos","quantity":2}]`
	require.NoError(t, store.Set(ctx, storageKey(keyCart), legacy))

	got, err := readCollection[models.CartItem](ctx, store, keyCart)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(7), got[0].ID)
	require.Equal(t, 2, got[0].Quantity)
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, storageKey(keyProducts), `{"version":99,"items":[]}`))

	_, err := readCollection[models.Product](ctx, store, keyProducts)
	require.ErrorIs(t, err, ErrBadSchema)
}

func TestReadRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, storageKey(keyProducts), `"not a collection"`))

	_, err := readCollection[models.Product](ctx, store, keyProducts)
	require.ErrorIs(t, err, ErrBadSchema)
}

func TestOrderAppendIsAdditive(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(kvstore.NewMemory())

	require.NoError(t, repo.Append(ctx, models.Order{ID: 1, Status: models.StatusPending}))
	require.NoError(t, repo.Append(ctx, models.Order{ID: 2, Status: models.StatusPending}))

	orders, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, int64(1), orders[0].ID)
	require.Equal(t, int64(2), orders[1].ID)
}

func TestAppendPropagatesWriteFailure(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	store.FailSet = map[string]error{storageKey(keyOrders): errors.New("store unavailable")}

	repo := NewOrderRepository(store)
	err := repo.Append(ctx, models.Order{ID: 3})
	if err == nil {
		t.Fatal("expected write failure to surface")
	}
}

func TestPaymentInfoEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewSettingsRepository(store)

	info := models.PaymentInfo{
		Banco:        "Bancolombia",
		TipoCuenta:   "Ahorros",
		NumeroCuenta: "12345678901",
		Titular:      "Luna Rosa SAS",
		Nequi:        "3001234567",
	}
	require.NoError(t, repo.SavePaymentInfo(ctx, info))

	raw := store.Snapshot()[storageKey(keyPaymentInfo)]
	require.NotContains(t, raw, "12345678901", "account number must not be stored in the clear")
	require.NotContains(t, raw, "Bancolombia")

	got, err := repo.PaymentInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, info, got)
}

func TestPaymentInfoDefaultsWhenUnset(t *testing.T) {
	repo := NewSettingsRepository(kvstore.NewMemory())
	got, err := repo.PaymentInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bancolombia", got.Banco)
	require.Equal(t, "Ahorros", got.TipoCuenta)
	require.Empty(t, got.NumeroCuenta)
}
