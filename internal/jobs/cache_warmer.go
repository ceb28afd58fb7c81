package jobs

import (
	"context"
	"log"
	"time"
)

// Refresher is a cache that can be forced to reload.
type Refresher interface {
	Refresh(ctx context.Context) int
}

// CacheWarmer periodically refreshes the resolver caches so requests rarely
// pay for a fetch round.
type CacheWarmer struct {
	caches   map[string]Refresher
	interval time.Duration
}

// NewCacheWarmer creates a new cache warmer over the named caches.
func NewCacheWarmer(caches map[string]Refresher, interval time.Duration) *CacheWarmer {
	return &CacheWarmer{
		caches:   caches,
		interval: interval,
	}
}

// Start begins the background refresh loop. It returns when ctx is cancelled.
func (w *CacheWarmer) Start(ctx context.Context) {
	log.Printf("Cache warmer started (interval: %v)", w.interval)

	// Run immediately on start
	w.refreshAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Cache warmer stopped")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

// refreshAll refreshes every cache, stopping early if ctx is cancelled.
func (w *CacheWarmer) refreshAll(ctx context.Context) {
	for name, cache := range w.caches {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n := cache.Refresh(ctx)
		log.Printf("Cache warmer: %s refreshed with %d entries", name, n)
	}
}
