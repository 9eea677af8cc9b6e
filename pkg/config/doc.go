// Package config loads environment variables into tagged structs.
//
// A .env file in the working directory is loaded once, if present, before
// the first parse; missing files are fine. Struct fields are bound with
// `env` tags:
//
//	type RenamerConfig struct {
//		MixedCase  bool   `env:"OBFUSKIT_MIXED_CASE" envDefault:"true"`
//		Dictionary string `env:"OBFUSKIT_DICTIONARY"`
//	}
//
//	var cfg RenamerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// program cannot start without.
package config
