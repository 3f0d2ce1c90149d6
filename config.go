package fh

import (
	"flag"

	"github.com/sirupsen/logrus"
)

// Config holds what a CLI entry point needs to stand up a Core: the export
// root, the path-cache capacity, and the log level. Of the tunables of §6
// only the cache capacity is set here; MaxDepth is a compile-time
// constant. It is deliberately small -- a flag.FlagSet, not a config framework, in
// the style of the teacher's own example/ mains.
type Config struct {
	// Root is the local directory this export serves.
	Root string
	// CacheEntries overrides CacheEntries when nonzero.
	CacheEntries int
	// LogLevel is a logrus level name ("debug", "info", "warn", "error").
	LogLevel string
}

// DefaultConfig returns a Config with the reference tunables.
func DefaultConfig() Config {
	return Config{
		Root:         "/",
		CacheEntries: CacheEntries,
		LogLevel:     "info",
	}
}

// RegisterFlags wires c's fields into fs, so a cmd/ main can call
// RegisterFlags(flag.CommandLine) and flag.Parse().
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Root, "root", c.Root, "local directory to export")
	fs.IntVar(&c.CacheEntries, "cache-entries", c.CacheEntries, "path cache capacity")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logrus level: debug, info, warn, error")
}

// Logger builds a logrus.Logger at c's configured level, falling back to
// info on an unparseable level name.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// NewCore builds a Core from c's settings.
func (c Config) NewCore() *Core {
	return NewCore(WithCacheEntries(c.CacheEntries), WithLogger(c.Logger()))
}
