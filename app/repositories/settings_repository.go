package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/pkg/crypt"
	"github.com/lunarosa/shop/pkg/kvstore"
)

const keyPaymentInfo = "payment-info"

// SettingsRepository persists the shop's payment configuration and the
// shopper's favorites. Payment details are bank account numbers, so they are
// encrypted at rest; the store only ever sees ciphertext for that key.
type SettingsRepository struct {
	store kvstore.Store
}

func NewSettingsRepository(store kvstore.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// defaultPaymentInfo matches the shop's original defaults before the admin
// fills anything in.
func defaultPaymentInfo() models.PaymentInfo {
	return models.PaymentInfo{Banco: "Bancolombia", TipoCuenta: "Ahorros"}
}

// PaymentInfo returns the configured payment details, or the defaults when
// none have been saved yet.
func (r *SettingsRepository) PaymentInfo(ctx context.Context) (models.PaymentInfo, error) {
	raw, err := r.store.Get(ctx, storageKey(keyPaymentInfo))
	if errors.Is(err, kvstore.ErrNotFound) {
		return defaultPaymentInfo(), nil
	}
	if err != nil {
		return models.PaymentInfo{}, fmt.Errorf("read %s: %w", keyPaymentInfo, err)
	}

	var info models.PaymentInfo
	if err := crypt.DecryptJSON(raw, &info); err != nil {
		return models.PaymentInfo{}, fmt.Errorf("decode %s: %w", keyPaymentInfo, err)
	}
	return info, nil
}

// SavePaymentInfo encrypts and stores the payment details.
func (r *SettingsRepository) SavePaymentInfo(ctx context.Context, info models.PaymentInfo) error {
	sealed, err := crypt.EncryptJSON(info)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keyPaymentInfo, err)
	}
	if err := r.store.Set(ctx, storageKey(keyPaymentInfo), sealed); err != nil {
		return fmt.Errorf("write %s: %w", keyPaymentInfo, err)
	}
	return nil
}

// Favorites returns the set of product IDs the shopper has hearted.
func (r *SettingsRepository) Favorites(ctx context.Context) ([]int64, error) {
	return readCollection[int64](ctx, r.store, keyFavorites)
}

// SaveFavorites replaces the stored favorites set.
func (r *SettingsRepository) SaveFavorites(ctx context.Context, ids []int64) error {
	return writeCollection(ctx, r.store, keyFavorites, ids)
}
