package memory

import (
	"sync"
	"time"

	"ventures-chat-be/pkg/citations"
	"ventures-chat-be/pkg/correlation"

	"github.com/patrickmn/go-cache"
)

// BindingRepository is the in-memory correlation staging area, backed by a
// TTL cache. Entries expire after an hour; a stale binding just means an
// empty citation panel, never an error.
type BindingRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewBindingRepository() *BindingRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &BindingRepository{
		cache: c,
	}
}

func (r *BindingRepository) Stage(b *correlation.Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.StagedAt = time.Now()
	r.cache.Set(b.Fingerprint, b, cache.DefaultExpiration)
}

func (r *BindingRepository) Promote(fingerprint, messageID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(fingerprint)
	if !found {
		return false
	}
	staged := x.(*correlation.Binding)

	linked := *staged
	linked.MessageID = messageID
	linked.Linked = true
	r.cache.Set(messageID, &linked, cache.DefaultExpiration)

	// The fingerprint entry stays behind as a fallback so repeated lookups
	// re-derive the same result.
	staged.MessageID = messageID
	staged.Linked = true
	r.cache.Set(fingerprint, staged, cache.DefaultExpiration)
	return true
}

func (r *BindingRepository) Get(key string) (*correlation.Binding, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(*correlation.Binding), true
	}
	return nil, false
}

func (r *BindingRepository) Lookup(messageID, messageContent string) []citations.ConsolidatedGroup {
	if b, ok := r.Get(messageID); ok {
		return b.Groups
	}

	if messageContent == "" {
		return nil
	}

	if b, ok := r.Get(correlation.Fingerprint(messageContent)); ok {
		return b.Groups
	}

	// Last resort: linear scan comparing stored response prefixes.
	want := correlation.ScanPrefix(messageContent)
	for _, item := range r.cache.Items() {
		b, ok := item.Object.(*correlation.Binding)
		if !ok || b.ResponseText == "" {
			continue
		}
		if correlation.ScanPrefix(b.ResponseText) == want {
			return b.Groups
		}
	}
	return nil
}

// PendingCount reports how many staged bindings are still waiting for a
// message id. Surfaced on the admin dashboard.
func (r *BindingRepository) PendingCount() int {
	count := 0
	for _, item := range r.cache.Items() {
		if b, ok := item.Object.(*correlation.Binding); ok && !b.Linked {
			count++
		}
	}
	return count
}

func (r *BindingRepository) ClearPending() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, item := range r.cache.Items() {
		if b, ok := item.Object.(*correlation.Binding); ok && !b.Linked {
			r.cache.Delete(key)
		}
	}
}
