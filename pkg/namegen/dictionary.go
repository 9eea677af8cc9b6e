package namegen

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// DictionaryFactory emits names from a user-supplied dictionary first and
// switches to a fallback factory once the dictionary runs out. Obfuscation
// dictionaries let callers steer renaming toward a preferred vocabulary
// while keeping the unbounded generated sequence behind it.
type DictionaryFactory struct {
	names    []string
	cursor   int
	fallback NameFactory
}

// NewDictionaryFactory reads a dictionary from r and wraps the given
// fallback. The dictionary format is whitespace-separated names; everything
// from '#' to the end of a line is a comment, and duplicate names are kept
// once. An empty dictionary is valid and makes the factory a plain
// pass-through to the fallback.
func NewDictionaryFactory(r io.Reader, fallback NameFactory) (*DictionaryFactory, error) {
	if fallback == nil {
		return nil, ErrNilFallback
	}

	var names []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, name := range strings.Fields(line) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadDictionary, err)
	}

	return &DictionaryFactory{names: names, fallback: fallback}, nil
}

// Reset rewinds to the first dictionary entry and resets the fallback.
func (f *DictionaryFactory) Reset() {
	f.cursor = 0
	f.fallback.Reset()
}

// NextName returns the next dictionary entry in file order, or the next
// fallback name once the dictionary is exhausted.
func (f *DictionaryFactory) NextName() string {
	if f.cursor < len(f.names) {
		name := f.names[f.cursor]
		f.cursor++
		return name
	}
	return f.fallback.NextName()
}
