package namegen

import "strconv"

// NumericFactory generates the decimal names "1", "2", "3", … . Useful where
// renamed entities only need to be numbered, such as synthetic local names.
// The zero value is ready to use.
type NumericFactory struct {
	cursor int
}

// Reset rewinds the sequence so the next name is "1" again.
func (f *NumericFactory) Reset() {
	f.cursor = 0
}

// NextName returns the next decimal name in sequence.
func (f *NumericFactory) NextName() string {
	f.cursor++
	return strconv.Itoa(f.cursor)
}
