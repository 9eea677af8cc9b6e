package namegen

import "math"

// NameFactory is the surface a renaming engine consumes: an infinite,
// restartable sequence of names. NextName never fails; implementations with
// a bounded supply must fall back or treat exhaustion as fatal.
type NameFactory interface {
	// Reset rewinds the sequence to its beginning.
	Reset()
	// NextName returns the next name in the sequence and advances it.
	NextName() string
}

// Option configures a Factory.
type Option func(*config)

type config struct {
	alphabet *Alphabet
	cache    *Cache
}

// WithAlphabet replaces the mode's built-in alphabet with a custom one.
// Ignored when WithCache is also given, since a cache is already bound to
// its own alphabet.
func WithAlphabet(alphabet *Alphabet) Option {
	return func(c *config) {
		c.alphabet = alphabet
	}
}

// WithCache shares a memoization table between factories. The cache's
// alphabet takes precedence over the mode and any WithAlphabet option.
// The caller owns the cache and decides its lifetime.
func WithCache(cache *Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// Factory generates the deterministic short-name sequence for one alphabet.
// The cursor always starts at zero, so the first names are the single-symbol
// ones, then every two-symbol name, and so on.
//
// A Factory is not safe for concurrent use; the shared Cache behind it is.
// Run one factory per goroutine and share the cache instead.
type Factory struct {
	cache  *Cache
	cursor int
}

// New creates a factory for the given mode. Without options the factory owns
// a private cache; pass WithCache to reuse one table across factories for
// the lifetime of a renaming session.
func New(mode Mode, opts ...Option) *Factory {
	cfg := &config{alphabet: ModeAlphabet(mode)}
	for _, opt := range opts {
		opt(cfg)
	}

	cache := cfg.cache
	if cache == nil {
		cache = NewCache(cfg.alphabet)
	}

	return &Factory{cache: cache}
}

// Reset rewinds the cursor to the start of the sequence. Memoized names are
// kept, so replaying a sequence after Reset costs only cache lookups.
func (f *Factory) Reset() {
	f.cursor = 0
}

// NextName returns the name at the cursor and advances the cursor by one.
// Names are distinct for every call between resets. Exhausting the int range
// would silently wrap the cursor and break that guarantee, so it panics
// instead; at realistic sequence lengths this is unreachable.
func (f *Factory) NextName() string {
	if f.cursor == math.MaxInt {
		panic("namegen: name sequence exhausted the index range")
	}

	name := f.cache.GetOrCompute(f.cursor)
	f.cursor++
	return name
}

// NameAt returns the name at an arbitrary index without moving the cursor.
// It returns ErrNegativeIndex for indices below zero.
func (f *Factory) NameAt(index int) (string, error) {
	if index < 0 {
		return "", ErrNegativeIndex
	}
	return f.cache.GetOrCompute(index), nil
}
