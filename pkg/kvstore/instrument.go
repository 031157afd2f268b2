package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/lunarosa/shop/pkg/metrics"
)

// instrumented decorates a Store with Prometheus latency and error metrics.
type instrumented struct {
	inner  Store
	driver string
}

// Instrument wraps s so every operation is observed under the driver label.
// A not-found Get is a normal outcome, not an error.
func Instrument(s Store, driver string) Store {
	return &instrumented{inner: s, driver: driver}
}

func (i *instrumented) Get(ctx context.Context, key string) (string, error) {
	defer metrics.ObserveStoreOp(i.driver, "get", time.Now())

	v, err := i.inner.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		metrics.StoreOpErrors.WithLabelValues(i.driver, "get").Inc()
	}
	return v, err
}

func (i *instrumented) Set(ctx context.Context, key, value string) error {
	defer metrics.ObserveStoreOp(i.driver, "set", time.Now())

	err := i.inner.Set(ctx, key, value)
	if err != nil {
		metrics.StoreOpErrors.WithLabelValues(i.driver, "set").Inc()
	}
	return err
}
