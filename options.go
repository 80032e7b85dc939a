package mpq

import (
	"errors"
	"io"
	"log/slog"
)

// Option configures parsing and extraction behavior. The same options are
// accepted by Parse and ParseStream; options that only apply to one of them
// are no-ops on the other.
type Option func(*config) error

// ProgressFunc receives coarse progress while a streaming parse runs: a
// stage label and a completion fraction in [0, 1]. It exists for
// observability only; there is no internal cancellation.
type ProgressFunc func(stage string, fraction float64)

const (
	defaultCacheSize      = 256
	defaultMaxNestedDepth = 4
)

type config struct {
	logger         *slog.Logger
	cacheSize      int
	verify         bool
	onProgress     ProgressFunc
	maxNestedDepth int
}

func defaultConfig() config {
	return config{
		cacheSize:      defaultCacheSize,
		maxNestedDepth: defaultMaxNestedDepth,
	}
}

// log returns the configured logger, falling back to a discard logger.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}

func (c *config) progress(stage string, fraction float64) {
	if c.onProgress != nil {
		c.onProgress(stage, fraction)
	}
}

// WithLogger routes warnings (size mismatches, salvage fallbacks, checksum
// trouble) to l. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithCacheSize sets the capacity, in files, of the extraction memoization
// cache.
func WithCacheSize(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return errors.New("mpq: cache size must be positive")
		}
		c.cacheSize = n
		return nil
	}
}

// WithChecksumVerification enables Adler-32 verification of sectors in
// files that carry a checksum table. Leave it off (the default) when
// best-effort recovery matters more than end-to-end integrity.
func WithChecksumVerification(on bool) Option {
	return func(c *config) error {
		c.verify = on
		return nil
	}
}

// WithProgress installs a progress callback for streaming parses.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) error {
		c.onProgress = fn
		return nil
	}
}

// WithMaxNestedDepth bounds how deep nested-archive extraction will recurse.
func WithMaxNestedDepth(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return errors.New("mpq: nested depth must not be negative")
		}
		c.maxNestedDepth = n
		return nil
	}
}
