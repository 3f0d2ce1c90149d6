package fh

import (
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/nfsfhcore/unfs3fh/file"
)

// cacheKey is the path cache's (dev, ino) key, per §3.2.
type cacheKey struct {
	dev, ino uint32
}

// pathCache is the LRU path cache of §4.6. It's backed by a generic
// thread-safe LRU (the teacher's own choice for its handle cache, in
// helpers/cachinghandler.go) rather than the reference's hand-rolled
// fixed array: the library's own recency order already implements
// "evict the slot with the least use among occupied slots" (§9), so
// there's no separate use-stamp bookkeeping to get wrong.
type pathCache struct {
	mu      sync.Mutex
	lru     *lru.Cache[cacheKey, string]
	maxSlot int
	uses    uint64
	hits    uint64
	log     *logrus.Logger
}

func newPathCache(capacity int, log *logrus.Logger) *pathCache {
	if capacity <= 0 {
		capacity = CacheEntries
	}
	c, _ := lru.New[cacheKey, string](capacity)
	return &pathCache{lru: c, log: log}
}

// lookup implements §4.6 lookup: a cache hit must still survive an lstat
// revalidation, since the cache never guarantees (dev, ino) still lives
// at the recorded path.
func (c *pathCache) lookup(dev, ino uint32) (string, FileStat, bool) {
	c.mu.Lock()
	c.uses++
	c.mu.Unlock()

	key := cacheKey{dev, ino}
	path, ok := c.lru.Get(key)
	if !ok {
		return "", FileStat{}, false
	}

	info, err := os.Lstat(path)
	if err != nil {
		c.lru.Remove(key)
		c.log.WithFields(logrus.Fields{"dev": dev, "ino": ino, "path": path}).Debug("fh: cache entry stale, lstat failed")
		return "", FileStat{}, false
	}
	d, i, ok := devIno(info)
	if !ok || d != dev || i != ino {
		c.lru.Remove(key)
		c.log.WithFields(logrus.Fields{"dev": dev, "ino": ino, "path": path}).Debug("fh: cache entry stale, (dev,ino) moved")
		return "", FileStat{}, false
	}

	c.mu.Lock()
	c.hits++
	if n := c.lru.Len(); n > c.maxSlot {
		c.maxSlot = n
	}
	c.mu.Unlock()

	gen := file.Generation(info, file.FDNone, path)
	return path, statFromInfo(info, gen), true
}

// add implements §4.6 add: overwrite an existing entry for (dev, ino), or
// otherwise let the LRU evict its own least-recently-used entry.
func (c *pathCache) add(dev, ino uint32, path string) {
	c.lru.Add(cacheKey{dev, ino}, path)

	c.mu.Lock()
	if n := c.lru.Len(); n > c.maxSlot {
		c.maxSlot = n
	}
	c.mu.Unlock()
}

// invalidate implements §4.6 invalidate.
func (c *pathCache) invalidate(dev, ino uint32) {
	c.lru.Remove(cacheKey{dev, ino})
}
