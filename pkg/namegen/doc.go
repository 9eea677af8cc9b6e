// Package namegen generates unique, minimal-length replacement names for
// identifier renaming. Names are produced deterministically: the n-th name of
// a sequence is always the same string, the sequence covers every finite
// non-empty string over its alphabet exactly once, and shorter names are
// always handed out before longer ones. That makes the generator suitable for
// obfuscation passes, where the goal is the shortest possible collision-free
// identifiers rather than memorable ones.
//
// # Architecture
//
//   - An Alphabet is an ordered, duplicate-free set of symbols. Two tables are
//     built in: MixedCase ("a-zA-Z", 52 symbols) and LowerCase ("a-z", 26
//     symbols). Custom tables are validated by NewAlphabet.
//   - The encoder maps a non-negative index to a name using bijective base-B
//     numeration (no zero digit), so index 0..B-1 yields the length-1 names,
//     B..B+B²-1 the length-2 names, and so on. The expansion is iterative to
//     keep stack usage flat for arbitrarily large indices.
//   - A Cache memoizes index→name results per alphabet. It is append-only,
//     never evicts, and is safe for concurrent use, so several factories can
//     share one cache for the lifetime of a renaming session.
//   - A Factory is the sequence driver: it owns a cursor, emits the next name
//     on each NextName call, and can be rewound with Reset to replay the
//     identical sequence.
//
// # Usage
//
// Generate short lower-case names:
//
//	f := namegen.New(namegen.LowerCase)
//	f.NextName() // "a"
//	f.NextName() // "b"
//	...
//	f.NextName() // "z", then "aa", "ab", ...
//
// Share one memoization table across factories of the same alphabet, e.g. one
// factory per class scope within a single obfuscation run:
//
//	cache := namegen.NewCache(namegen.ModeAlphabet(namegen.MixedCase))
//	fa := namegen.New(namegen.MixedCase, namegen.WithCache(cache))
//	fb := namegen.New(namegen.MixedCase, namegen.WithCache(cache))
//
// Prefer names from an obfuscation dictionary, falling back to generated
// names once the dictionary is exhausted:
//
//	df, err := namegen.NewDictionaryFactory(file, namegen.New(namegen.LowerCase))
//
// # Determinism
//
// A factory after Reset, and a brand-new factory over the same alphabet,
// produce byte-identical sequences. The cache only ever affects the cost of a
// lookup, never its result.
package namegen
