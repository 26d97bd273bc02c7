// Package seeders provides a registry of catalogue seed functions run once
// at boot (and on demand via `eggstore seed`).
//
// Define a seeder in any file in this package:
//
//	func init() {
//	    seeders.Register("products", SeedProducts)
//	}
package seeders

import (
	"context"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/eggstore/app/repositories"
)

// Deps are the repositories a seeder may write through.
type Deps struct {
	Products repositories.ProductRepository
}

// SeederFunc is the signature for a seed function. Seeders must be
// idempotent given a non-empty collection: re-running on existing data is
// a no-op.
type SeederFunc func(ctx context.Context, deps Deps) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(ctx context.Context, deps Deps) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		if err := e.fn(ctx, deps); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
	}
	return nil
}
