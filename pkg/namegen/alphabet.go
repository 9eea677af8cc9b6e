package namegen

// Mode selects one of the built-in alphabets.
type Mode int

const (
	// MixedCase uses lower- and upper-case letters, doubling the symbol count.
	MixedCase Mode = iota
	// LowerCase uses lower-case letters only.
	LowerCase
)

// String returns a human-readable mode name for logs and error messages.
func (m Mode) String() string {
	switch m {
	case MixedCase:
		return "mixed-case"
	case LowerCase:
		return "lower-case"
	default:
		return "unknown"
	}
}

const (
	lowerCaseSymbols = "abcdefghijklmnopqrstuvwxyz"
	upperCaseSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Alphabet is an ordered, duplicate-free set of symbols. The index→symbol
// mapping is fixed at construction and never changes afterwards, which is
// what keeps generated sequences stable across the life of a process.
type Alphabet struct {
	symbols []rune
}

var (
	mixedCaseAlphabet = mustAlphabet(lowerCaseSymbols + upperCaseSymbols)
	lowerCaseAlphabet = mustAlphabet(lowerCaseSymbols)
)

// NewAlphabet builds an alphabet from the given symbols, in order.
// It returns ErrEmptyAlphabet for an empty string and ErrDuplicateSymbol
// when the same symbol appears more than once.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			return nil, ErrDuplicateSymbol
		}
		seen[r] = struct{}{}
	}

	return &Alphabet{symbols: runes}, nil
}

// mustAlphabet backs the built-in tables; invalid built-ins are a programming
// error, not a runtime condition.
func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// ModeAlphabet returns the built-in alphabet for the given mode.
// Unknown modes fall back to MixedCase, mirroring the generator's default.
func ModeAlphabet(mode Mode) *Alphabet {
	if mode == LowerCase {
		return lowerCaseAlphabet
	}
	return mixedCaseAlphabet
}

// Size returns the number of symbols in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// SymbolAt returns the symbol at the given offset, 0 ≤ offset < Size.
func (a *Alphabet) SymbolAt(offset int) rune {
	return a.symbols[offset]
}

// Contains reports whether the alphabet includes the given symbol.
func (a *Alphabet) Contains(r rune) bool {
	for _, s := range a.symbols {
		if s == r {
			return true
		}
	}
	return false
}
