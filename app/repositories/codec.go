// Package repositories maps the shop's collections onto the key-value store.
// Every collection lives under one key as a versioned JSON envelope:
//
//	{"version":1,"items":[...]}
//
// Values written before the envelope existed were bare arrays; those are
// upgraded transparently on read. Any other shape is rejected rather than
// guessed at.
package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lunarosa/shop/config"
	"github.com/lunarosa/shop/pkg/kvstore"
)

// schemaVersion is the envelope version this build reads and writes.
const schemaVersion = 1

// ErrBadSchema is returned when a stored value is neither a current envelope
// nor a legacy bare array.
var ErrBadSchema = errors.New("repositories: unrecognized stored schema")

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// storageKey prefixes a collection name with the configured shop prefix, so
// several shops can share one store ("luna-rosa-products" etc.).
func storageKey(name string) string {
	return config.StorePrefix() + "-" + name
}

// readCollection loads and decodes the collection under name. A missing key
// means an empty collection, never an error.
func readCollection[T any](ctx context.Context, s kvstore.Store, name string) ([]T, error) {
	raw, err := s.Get(ctx, storageKey(name))
	if errors.Is(err, kvstore.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return decodeCollection[T](name, raw)
}

func decodeCollection[T any](name, raw string) ([]T, error) {
	var env envelope[T]
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Version != 0 {
		if env.Version != schemaVersion {
			return nil, fmt.Errorf("%w: %s has version %d", ErrBadSchema, name, env.Version)
		}
		if env.Items == nil {
			env.Items = []T{}
		}
		return env.Items, nil
	}

	// Legacy shape: a bare JSON array from before the envelope was introduced.
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadSchema, name)
	}
	return items, nil
}

// writeCollection encodes items into the current envelope and stores them
// under name, replacing whatever was there.
func writeCollection[T any](ctx context.Context, s kvstore.Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(envelope[T]{Version: schemaVersion, Items: items})
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.Set(ctx, storageKey(name), string(data)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
