package namegen

import "slices"

// Encode maps a non-negative index to a name using bijective base-B
// numeration over the given alphabet. Unlike ordinary positional numerals
// there is no zero digit: the decrement after each division step is what
// makes every finite non-empty string over the alphabet correspond to
// exactly one index, enumerated shortest-first.
//
// Encode is pure and needs no cache; Factory and Cache exist to amortize the
// cost when indices are drawn sequentially. It returns ErrNegativeIndex for
// indices below zero.
func Encode(index int, alphabet *Alphabet) (string, error) {
	if index < 0 {
		return "", ErrNegativeIndex
	}

	base := alphabet.Size()

	// Collect symbols least-significant first and reverse at the end, so the
	// cost is O(length of the result) with no recursion.
	buf := make([]rune, 0, 8)
	for {
		buf = append(buf, alphabet.SymbolAt(index%base))
		index = index/base - 1
		if index < 0 {
			break
		}
	}

	slices.Reverse(buf)
	return string(buf), nil
}
