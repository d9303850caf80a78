package progress

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/foundry90/internal/domain"
)

type cachedUnlockEntry struct {
	Version string
	Gen     uint64
	// Valid is false for the marker left behind by Invalidate
	Valid bool
	State domain.UnlockState
}

// unlockCache keeps the slice of progress that canAdvance needs. Clients poll
// canAdvance, so hits skip the store; the answer is still computed against
// the clock on every call.
//
// Fills race with committed mutations: a reader takes a Snapshot before it
// reads the store and Set drops the fill if the user was invalidated after
// that snapshot.
type unlockCache struct {
	mu  sync.Mutex
	seq uint64
	// evictedGen is the highest generation that has left the LRU. A fill whose
	// snapshot is older cannot prove it is newer than the evicted marker.
	evictedGen atomic.Uint64
	lru        *expirable.LRU[string, *cachedUnlockEntry]
}

func newUnlockCache(size int, ttl time.Duration) *unlockCache {
	c := &unlockCache{}
	c.lru = expirable.NewLRU[string, *cachedUnlockEntry](size, c.onEvict, ttl)
	return c
}

func (c *unlockCache) onEvict(_ string, entry *cachedUnlockEntry) {
	for {
		cur := c.evictedGen.Load()
		if entry.Gen <= cur || c.evictedGen.CompareAndSwap(cur, entry.Gen) {
			return
		}
	}
}

// Snapshot returns the generation a store read is about to observe
func (c *unlockCache) Snapshot() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Get returns a copy of the cached state
func (c *unlockCache) Get(userID string) (domain.UnlockState, bool) {
	entry, found := c.lru.Get(userID)
	if !found || !entry.Valid {
		return domain.UnlockState{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return domain.UnlockState{}, false
	}
	return copyState(entry.State), true
}

// Set stores the unlock state derived from p, read after snapshot was taken.
// It reports false when a newer invalidation makes p stale.
func (c *unlockCache) Set(p *domain.Progress, snapshot uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.lru.Peek(p.UserID); ok {
		if existing.Gen > snapshot {
			return false
		}
	} else if c.evictedGen.Load() > snapshot {
		return false
	}

	c.lru.Add(p.UserID, &cachedUnlockEntry{
		Version: CacheSchemaVersion,
		Gen:     snapshot,
		Valid:   true,
		State: copyState(domain.UnlockState{
			CurrentDay:       p.CurrentDay,
			NextDayUnlocksAt: p.NextDayUnlocksAt,
		}),
	})
	return true
}

// Invalidate marks a user's entry stale; called after every committed mutation
func (c *unlockCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.lru.Add(userID, &cachedUnlockEntry{Version: CacheSchemaVersion, Gen: c.seq})
}

// Len returns the number of users with a usable entry
func (c *unlockCache) Len() int {
	n := 0
	for _, entry := range c.lru.Values() {
		if entry.Valid {
			n++
		}
	}
	return n
}

func copyState(s domain.UnlockState) domain.UnlockState {
	if s.NextDayUnlocksAt != nil {
		t := *s.NextDayUnlocksAt
		s.NextDayUnlocksAt = &t
	}
	return s
}
