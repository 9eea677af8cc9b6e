package renamer

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"sync"

	"github.com/dmitrymomot/obfuskit/pkg/namegen"
)

// Option configures a Renamer.
type Option func(*Renamer)

// WithReserved marks names the renamer must never hand out, such as target
// language keywords or identifiers that stay visible to external callers.
func WithReserved(names ...string) Option {
	return func(r *Renamer) {
		for _, name := range names {
			r.reserved[name] = struct{}{}
		}
	}
}

// WithValidator installs a callback consulted for every candidate name.
// Returning false skips the candidate permanently for this renamer. The
// validator must accept infinitely many names or Rename will not return.
func WithValidator(fn func(name string) bool) Option {
	return func(r *Renamer) {
		r.validate = fn
	}
}

// WithLogger enables debug logging of every assignment. Silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(r *Renamer) {
		r.log = log
	}
}

// Renamer maps original identifiers to unique short names drawn from a
// NameFactory, skipping reserved and already-used names. Safe for concurrent
// use; the factory behind it is only ever driven under the internal lock.
type Renamer struct {
	mu       sync.Mutex
	factory  namegen.NameFactory
	reserved map[string]struct{}
	used     map[string]struct{}
	mapping  map[string]string
	validate func(string) bool
	log      *slog.Logger
}

// New creates a renamer around the given name factory.
// The factory must not be nil.
func New(factory namegen.NameFactory, opts ...Option) *Renamer {
	if factory == nil {
		panic("renamer: name factory must not be nil")
	}

	r := &Renamer{
		factory:  factory,
		reserved: make(map[string]struct{}),
		used:     make(map[string]struct{}),
		mapping:  make(map[string]string),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rename returns the short name for the given original identifier,
// assigning the next acceptable one on first sight. The result is stable:
// the same original always maps to the same short name, and distinct
// originals never collide.
func (r *Renamer) Rename(original string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name, ok := r.mapping[original]; ok {
		return name
	}

	for {
		candidate := r.factory.NextName()
		if _, ok := r.reserved[candidate]; ok {
			continue
		}
		if _, ok := r.used[candidate]; ok {
			continue
		}
		if r.validate != nil && !r.validate(candidate) {
			continue
		}

		r.used[candidate] = struct{}{}
		r.mapping[original] = candidate
		r.log.Debug("renamed identifier",
			slog.String("from", original),
			slog.String("to", candidate),
		)
		return candidate
	}
}

// Renamed reports the short name assigned to an original, if any, without
// assigning one.
func (r *Renamer) Renamed(original string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.mapping[original]
	return name, ok
}

// Reserve marks externally claimed names as off-limits for future
// assignments. It fails with ErrNameTaken if a name was already handed out
// to a renamed identifier; earlier names in the same call stay reserved.
func (r *Renamer) Reserve(names ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range names {
		if _, ok := r.used[name]; ok {
			return fmt.Errorf("%w: %q", ErrNameTaken, name)
		}
		r.reserved[name] = struct{}{}
	}
	return nil
}

// Mapping returns a copy of the accumulated original→short mapping.
func (r *Renamer) Mapping() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.mapping)
}

// Reset discards all assignments and rewinds the factory, keeping the
// reserved set. Use it to start a fresh naming scope with the same policy.
func (r *Renamer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.used = make(map[string]struct{})
	r.mapping = make(map[string]string)
	r.factory.Reset()
}
