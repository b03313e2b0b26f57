// Package location resolves postal codes to geographic identities and
// filters benefit catalogs by geographic coverage.
package location

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/marcus/benefits-finder/internal/types"
)

// cachedLookup is the stored form of one Resolve result. Misses are
// cached too, so a resolver backed by a slow dataset is not re-queried
// for postal codes known to be absent.
type cachedLookup struct {
	location *types.Location
	found    bool
}

// CachingResolver wraps another Resolver with a TTL cache. It is
// behaviorally transparent: for any postal code it returns exactly what
// the wrapped resolver would, only faster on repeat lookups. Safe for
// concurrent use.
type CachingResolver struct {
	inner Resolver
	cache *gocache.Cache
}

// NewCachingResolver creates a caching decorator around inner.
func NewCachingResolver(inner Resolver, ttl time.Duration, cleanupInterval time.Duration) *CachingResolver {
	return &CachingResolver{
		inner: inner,
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Resolve returns the cached result for zipCode, consulting the wrapped
// resolver on a cache miss.
func (r *CachingResolver) Resolve(zipCode string) (*types.Location, bool) {
	if val, found := r.cache.Get(zipCode); found {
		entry := val.(cachedLookup)
		return entry.location, entry.found
	}

	loc, found := r.inner.Resolve(zipCode)
	r.cache.Set(zipCode, cachedLookup{location: loc, found: found}, gocache.DefaultExpiration)
	return loc, found
}
