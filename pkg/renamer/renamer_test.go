package renamer_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/obfuskit/pkg/namegen"
	"github.com/dmitrymomot/obfuskit/pkg/renamer"
)

func TestRenameStability(t *testing.T) {
	r := renamer.New(namegen.New(namegen.LowerCase))

	first := r.Rename("calculateTotalPrice")
	second := r.Rename("userRepository")

	assert.Equal(t, "a", first)
	assert.Equal(t, "b", second)
	assert.Equal(t, first, r.Rename("calculateTotalPrice"), "same original, same short name")
	assert.NotEqual(t, first, second)
}

func TestRenameSkipsReserved(t *testing.T) {
	r := renamer.New(namegen.New(namegen.LowerCase),
		renamer.WithReserved("a", "c"),
	)

	assert.Equal(t, "b", r.Rename("first"))
	assert.Equal(t, "d", r.Rename("second"))
}

func TestRenameValidator(t *testing.T) {
	// Reject everything containing "a"; forces the generator past it.
	r := renamer.New(namegen.New(namegen.LowerCase),
		renamer.WithValidator(func(name string) bool {
			return !strings.Contains(name, "a")
		}),
	)

	assert.Equal(t, "b", r.Rename("first"))

	for i := 0; i < 100; i++ {
		assert.NotContains(t, r.Rename(strings.Repeat("x", i+2)), "a")
	}
}

func TestReserve(t *testing.T) {
	r := renamer.New(namegen.New(namegen.LowerCase))

	require.NoError(t, r.Reserve("a", "b"))
	assert.Equal(t, "c", r.Rename("first"))

	// "c" was already handed out.
	err := r.Reserve("c")
	assert.ErrorIs(t, err, renamer.ErrNameTaken)

	// Reserving after the fact still blocks future assignments.
	require.NoError(t, r.Reserve("d"))
	assert.Equal(t, "e", r.Rename("second"))
}

func TestRenamed(t *testing.T) {
	r := renamer.New(namegen.New(namegen.LowerCase))

	_, ok := r.Renamed("unknown")
	assert.False(t, ok)

	short := r.Rename("known")
	got, ok := r.Renamed("known")
	require.True(t, ok)
	assert.Equal(t, short, got)
}

func TestMapping(t *testing.T) {
	r := renamer.New(namegen.New(namegen.LowerCase))

	r.Rename("alpha")
	r.Rename("beta")

	m := r.Mapping()
	assert.Equal(t, map[string]string{"alpha": "a", "beta": "b"}, m)

	// The copy is detached from the renamer's state.
	m["alpha"] = "tampered"
	assert.Equal(t, "a", r.Rename("alpha"))
}

func TestReset(t *testing.T) {
	r := renamer.New(namegen.New(namegen.LowerCase),
		renamer.WithReserved("a"),
	)

	assert.Equal(t, "b", r.Rename("alpha"))
	r.Reset()

	assert.Empty(t, r.Mapping())
	assert.Equal(t, "b", r.Rename("gamma"), "reserved set survives a reset")
}

func TestRenameConcurrent(t *testing.T) {
	r := renamer.New(namegen.New(namegen.MixedCase))

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	results := make([]map[string]string, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			local := make(map[string]string, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				original := strings.Repeat("x", i+1)
				local[original] = r.Rename(original)
			}
			results[g] = local
		}(g)
	}
	wg.Wait()

	// Every goroutine renamed the same originals and must agree on the result.
	for g := 1; g < goroutines; g++ {
		require.Equal(t, results[0], results[g])
	}

	// Short names stay injective across the whole run.
	seen := make(map[string]string)
	for original, short := range results[0] {
		if prev, ok := seen[short]; ok {
			t.Fatalf("short name %q assigned to both %q and %q", short, prev, original)
		}
		seen[short] = original
	}
}

func TestNewNilFactoryPanics(t *testing.T) {
	assert.Panics(t, func() {
		renamer.New(nil)
	})
}
