// Package seed fills an empty store with a demo catalog so a fresh install
// has something to show.
//
// Seeders are registered in init() and run in registration order; each one
// skips itself when its collection already has data, so seeding an existing
// shop never clobbers the admin's catalog.
package seed

import (
	"context"
	"fmt"
	"sync"

	"github.com/lunarosa/shop/pkg/kvstore"
)

// Func seeds one collection.
type Func func(ctx context.Context, store kvstore.Store) error

type entry struct {
	name string
	fn   Func
}

var (
	mu      sync.Mutex
	entries []entry
)

// Register adds a seeder to the registry. Call from init().
func Register(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, entry{name: name, fn: fn})
}

// RunAll executes every registered seeder in order, stopping on the first
// error.
func RunAll(ctx context.Context, store kvstore.Store) error {
	mu.Lock()
	current := make([]entry, len(entries))
	copy(current, entries)
	mu.Unlock()

	if len(current) == 0 {
		fmt.Println("  (no seeders registered)")
		return nil
	}

	for _, e := range current {
		fmt.Printf("  • Seeding %s … ", e.name)
		if err := e.fn(ctx, store); err != nil {
			fmt.Println("failed")
			return fmt.Errorf("seed %s: %w", e.name, err)
		}
		fmt.Println("done")
	}
	return nil
}
