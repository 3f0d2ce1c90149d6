package fh

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nfsfhcore/unfs3fh/file"
)

// Core is the public façade of §4.7: the cache-aware wrappers around the
// stateless encoder, decoder, and extender that an embedding NFS PROC
// layer actually calls. It owns the path cache and the attribute-cache
// convenience slot, scoped per value rather than process-wide (§9,
// "process-wide mutable state -> scoped ownership").
type Core struct {
	cache *pathCache
	attr  attrSlot
	log   *logrus.Logger
}

// coreOpts accumulates Option settings before the Core (and its cache,
// which needs the final logger) is actually built.
type coreOpts struct {
	cacheEntries int
	log          *logrus.Logger
}

// Option configures a Core at construction time.
type Option func(*coreOpts)

// WithCacheEntries overrides the default path-cache capacity.
func WithCacheEntries(n int) Option {
	return func(o *coreOpts) { o.cacheEntries = n }
}

// WithLogger overrides the default logrus.StandardLogger() sink.
func WithLogger(l *logrus.Logger) Option {
	return func(o *coreOpts) { o.log = l }
}

// NewCore builds a Core with CacheEntries capacity and logrus.StandardLogger()
// unless overridden by opts.
func NewCore(opts ...Option) *Core {
	o := coreOpts{cacheEntries: CacheEntries, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Core{
		cache: newPathCache(o.cacheEntries, o.log),
		log:   o.log,
	}
}

// Validate is the façade's pass-through to the stateless Validate, so
// callers only need to hold a *Core.
func (c *Core) Validate(b []byte) error {
	return Validate(b)
}

// EncodeCached runs Encode and, on success, adds the result to the path
// cache, per §4.7. ctx is accepted but only checked at entry (§5); Encode
// itself does no internal retries to cancel mid-flight.
func (c *Core) EncodeCached(ctx context.Context, path string, requireDir bool) (Handle, FileStat, error) {
	if err := ctx.Err(); err != nil {
		c.attr.invalidate()
		return Zero, FileStat{}, err
	}

	h, stat, err := Encode(path, requireDir)
	if err != nil {
		c.attr.invalidate()
		return Zero, FileStat{}, err
	}
	c.cache.add(h.Dev, h.Ino, filepath.Clean(path))
	c.attr.set(stat)
	return h, stat, nil
}

// DecodeCached implements §4.7 decode_cached: validate the wire bytes,
// try the path cache, and fall back to the resolver's cold scan on a
// miss, re-populating the cache on success.
func (c *Core) DecodeCached(ctx context.Context, b []byte) (string, FileStat, error) {
	if err := ctx.Err(); err != nil {
		c.attr.invalidate()
		return "", FileStat{}, err
	}

	h, err := UnmarshalHandle(b)
	if err != nil {
		c.attr.invalidate()
		return "", FileStat{}, err
	}

	if h.Len == 0 {
		info, err := os.Lstat("/")
		if err != nil {
			c.attr.invalidate()
			return "/", FileStat{}, nil
		}
		stat := statFromInfo(info, file.Generation(info, file.FDNone, "/"))
		c.attr.set(stat)
		return "/", stat, nil
	}

	if path, stat, ok := c.cache.lookup(h.Dev, h.Ino); ok {
		c.attr.set(stat)
		return strings.TrimPrefix(path, "/"), stat, nil
	}

	c.log.WithFields(logrus.Fields{"dev": h.Dev, "ino": h.Ino}).Debug("fh: cache miss, scanning")
	path, stat, err := Decode(h)
	if err != nil {
		c.attr.invalidate()
		return "", FileStat{}, err
	}
	c.cache.add(h.Dev, h.Ino, "/"+path)
	c.attr.set(stat)
	return path, stat, nil
}

// ExtendWithPath wraps the stateless ExtendWithPath, threading the
// Core's own attribute slot through it.
func (c *Core) ExtendWithPath(parent Handle, path string, requiredMode os.FileMode) (Handle, FileStat, error) {
	h, stat, err := ExtendWithPath(parent, path, requiredMode, &c.attr)
	if err != nil {
		return Zero, FileStat{}, err
	}
	c.cache.add(h.Dev, h.Ino, filepath.Clean(path))
	return h, stat, nil
}

// PeekAttr returns the FileStat observed by the most recent successful
// core call on this Core, per §3.3/§4.8. It is safe only when called by a
// single goroutine at a time, immediately after the call that populated
// it (§5); concurrent callers should use the tuple-returning forms above
// instead.
func (c *Core) PeekAttr() (FileStat, bool) {
	return c.attr.peek()
}

// Stats reports the path cache's observability counters, per §4.7.
func (c *Core) Stats() (maxSlot int, uses, hits uint64) {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()
	return c.cache.maxSlot, c.cache.uses, c.cache.hits
}
