package memory

import (
	"time"

	"ai-docchat-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// IdentityCache memoizes resolved users for a short TTL so repeated chat
// turns don't hit the account store every time. A stale or missing entry
// always triggers a fresh lookup; nothing ever blocks on the cache.
type IdentityCache struct {
	cache *cache.Cache
}

func NewIdentityCache(ttl time.Duration) *IdentityCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	// Purge expired entries at twice the TTL interval.
	return &IdentityCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *IdentityCache) Save(user *entity.User) {
	c.cache.Set(user.Id.String(), user, cache.DefaultExpiration)
}

func (c *IdentityCache) Get(userID string) (*entity.User, bool) {
	if x, found := c.cache.Get(userID); found {
		return x.(*entity.User), true
	}
	return nil, false
}

func (c *IdentityCache) Delete(userID string) {
	c.cache.Delete(userID)
}
