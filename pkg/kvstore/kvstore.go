// Package kvstore provides the shop's persistence contract: a string-keyed
// store of serialized text values, read and written one key at a time.
//
// Every piece of shop state — products, cart, orders, banners, favorites,
// payment settings — lives under its own key as a JSON document. The store
// guarantees atomicity per key only; there is deliberately no multi-key
// transaction, and callers that touch several keys (checkout does) own the
// ordering and the partial-failure semantics.
//
// Five drivers are available:
//
//	"memory"  — in-process map (tests, demos)
//	"file"    — one file per key on local disk (default)
//	"redis"   — Redis via go-redis
//	"sql"     — a key/value table via GORM (sqlite, postgres, mysql, sqlserver)
//	"s3"      — one object per key in S3-compatible storage
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/lunarosa/shop/config"
)

// ErrNotFound is returned by Get when no value exists under the key.
// Callers reading collections treat it as "empty", never as a failure.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the persistence contract assumed by the whole application.
type Store interface {
	// Get returns the text stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores text under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// Connect builds the driver selected by STORE_DRIVER and wraps it with
// Prometheus instrumentation. Call once at application startup.
func Connect() (Store, error) {
	driver := config.StoreDriver()

	var (
		s   Store
		err error
	)
	switch driver {
	case "memory":
		s = NewMemory()
	case "file":
		s, err = NewFile(config.StoreFileRoot())
	case "redis":
		s, err = NewRedis(config.RedisAddr(), config.RedisPassword())
	case "sql":
		s, err = NewSQL(config.SQLDriver(), config.SQLDSN())
	case "s3":
		s, err = NewS3()
	default:
		err = fmt.Errorf("kvstore: unsupported STORE_DRIVER %q", driver)
	}
	if err != nil {
		return nil, err
	}

	return Instrument(s, driver), nil
}
