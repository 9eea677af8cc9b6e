package namegen

import "sync"

// Cache is an append-only memoization table mapping sequence indices to
// names over a single alphabet. Entries are never invalidated or evicted;
// the table grows monotonically for as long as its owner keeps it, typically
// one renaming session.
//
// A cache is safe for concurrent use, so factories running on different
// goroutines may share one instance. Sharing is only meaningful between
// factories of the same alphabet; tables for different alphabets are
// independent and never exchange entries.
type Cache struct {
	mu       sync.Mutex
	alphabet *Alphabet
	names    []string
}

// NewCache creates an empty cache bound to the given alphabet.
func NewCache(alphabet *Alphabet) *Cache {
	return &Cache{alphabet: alphabet}
}

// GetOrCompute returns the name at the given index, computing and storing it
// first if needed. Repeated calls for the same index return the identical
// string. The index must not be negative; negative indices indicate a bug in
// the caller and panic.
func (c *Cache) GetOrCompute(index int) string {
	if index < 0 {
		panic(ErrNegativeIndex)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Fill sequentially up to the requested index. Each new entry reuses the
	// memoized prefix: the name at i is the name at i/base-1 extended by one
	// symbol, and that prefix index is always smaller than i.
	base := c.alphabet.Size()
	for i := len(c.names); i <= index; i++ {
		offset := i % base
		symbol := c.alphabet.SymbolAt(offset)

		baseIndex := i / base
		if baseIndex == 0 {
			c.names = append(c.names, string(symbol))
			continue
		}
		c.names = append(c.names, c.names[baseIndex-1]+string(symbol))
	}

	return c.names[index]
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.names)
}
