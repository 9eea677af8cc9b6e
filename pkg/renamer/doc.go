// Package renamer assigns deterministic short replacement names to
// identifiers. It drives a namegen.NameFactory and owns the collision
// policy the generator itself stays agnostic of: reserved words, names the
// caller has claimed for other purposes, and caller-supplied validation.
//
// The mapping is stable for the lifetime of a Renamer: renaming the same
// original twice returns the same short name, and no two originals ever
// share one. The mapping lives in memory only; persisting it is the
// caller's concern.
//
// # Usage
//
//	r := renamer.New(namegen.New(namegen.LowerCase),
//		renamer.WithReserved("if", "for", "func"),
//	)
//
//	r.Rename("calculateTotalPrice") // "a"
//	r.Rename("userRepository")      // "b"
//	r.Rename("calculateTotalPrice") // "a" again
//
// Configuration can also come from the environment via Config and
// FromConfig, including an optional obfuscation dictionary file whose
// entries are preferred over generated names.
//
// A Renamer is safe for concurrent use. The validator callback runs under
// the internal lock, so it must not call back into the Renamer.
package renamer
