package dependency

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const defaultCleanupInterval = 10 * time.Minute

// resultCache memoizes successful resolutions by graph fingerprint.
// Concurrent misses for the same fingerprint share one computation.
type resultCache struct {
	cache *gocache.Cache
	group singleflight.Group
}

func newResultCache(ttl time.Duration) *resultCache {
	expiration := ttl
	cleanup := defaultCleanupInterval
	if ttl <= 0 {
		expiration = gocache.NoExpiration
		cleanup = 0
	}
	return &resultCache{
		cache: gocache.New(expiration, cleanup),
	}
}

// resolve returns a cached order for g or computes it with fn. Errors are
// returned to every waiting caller but never stored.
func (c *resultCache) resolve(g Graph, fn func(Graph) ([]string, error)) ([]string, bool, error) {
	key := fingerprint(g)

	if cached, found := c.cache.Get(key); found {
		if order, ok := cached.([]string); ok {
			return copyOrder(order), true, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		order, err := fn(g)
		if err != nil {
			return nil, err
		}
		c.cache.SetDefault(key, order)
		return order, nil
	})
	if err != nil {
		return nil, false, err
	}
	return copyOrder(v.([]string)), false, nil
}

// fingerprint derives a content key for g. Nodes are visited in lexical order
// and every name is length-prefixed, so distinct graphs cannot collide on
// separator characters.
func fingerprint(g Graph) string {
	h := sha256.New()
	write := func(s string) {
		h.Write([]byte(strconv.Itoa(len(s))))
		h.Write([]byte{':'})
		h.Write([]byte(s))
	}
	for _, node := range g.Nodes() {
		write(node)
		deps := g[node]
		h.Write([]byte("[" + strconv.Itoa(len(deps)) + "]"))
		for _, dep := range deps {
			write(dep)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func copyOrder(order []string) []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}
