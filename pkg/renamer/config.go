package renamer

import (
	"errors"
	"os"

	"github.com/dmitrymomot/obfuskit/pkg/namegen"
)

// Config describes a renamer in environment variables, loaded with the
// config package.
type Config struct {
	// MixedCase selects the 52-symbol mixed-case alphabet; false restricts
	// generated names to lower-case letters.
	MixedCase bool `env:"OBFUSKIT_MIXED_CASE" envDefault:"true"`

	// DictionaryPath optionally points at a dictionary file whose names are
	// preferred over generated ones.
	DictionaryPath string `env:"OBFUSKIT_DICTIONARY"`

	// Reserved lists names the renamer must never assign.
	Reserved []string `env:"OBFUSKIT_RESERVED" envSeparator:","`
}

// FromConfig builds a renamer from a Config, wiring up the alphabet mode,
// the optional dictionary file, and the reserved list. Extra options are
// applied on top.
func FromConfig(cfg Config, opts ...Option) (*Renamer, error) {
	mode := namegen.LowerCase
	if cfg.MixedCase {
		mode = namegen.MixedCase
	}

	var factory namegen.NameFactory = namegen.New(mode)

	if cfg.DictionaryPath != "" {
		f, err := os.Open(cfg.DictionaryPath)
		if err != nil {
			return nil, errors.Join(ErrOpenDictionary, err)
		}
		defer f.Close()

		// The dictionary is consumed eagerly, so the file handle is not
		// needed past construction.
		factory, err = namegen.NewDictionaryFactory(f, factory)
		if err != nil {
			return nil, err
		}
	}

	if len(cfg.Reserved) > 0 {
		opts = append([]Option{WithReserved(cfg.Reserved...)}, opts...)
	}

	return New(factory, opts...), nil
}
