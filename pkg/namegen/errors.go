package namegen

import "errors"

// Package-specific errors
var (
	// ErrEmptyAlphabet is returned when an alphabet is constructed without symbols
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one symbol")

	// ErrDuplicateSymbol is returned when an alphabet contains the same symbol twice
	ErrDuplicateSymbol = errors.New("alphabet symbols must be distinct")

	// ErrNegativeIndex is returned when a name is requested for an index below zero
	ErrNegativeIndex = errors.New("name index must not be negative")

	// ErrReadDictionary is returned when a name dictionary cannot be read
	ErrReadDictionary = errors.New("failed to read name dictionary")

	// ErrNilFallback is returned when a dictionary factory is built without a fallback
	ErrNilFallback = errors.New("dictionary factory requires a fallback factory")
)
