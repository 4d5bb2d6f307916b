package filter_cache

import (
	"sync"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The filter rail (categories, brands, sizes, price range) is identical for
// every visitor, so one process-local entry with a short TTL is enough.

type entry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
)

func Get() (*models.FilterMetadata, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.data, true
	}
	return nil, false
}

func Set(data *models.FilterMetadata) {
	mu.Lock()
	defer mu.Unlock()
	cache = &entry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call on any product create/update/delete) ────────────────────

func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
