package renamer

import "errors"

// Package-specific errors
var (
	// ErrNameTaken is returned when reserving a name the renamer already assigned
	ErrNameTaken = errors.New("name is already assigned to a renamed identifier")

	// ErrOpenDictionary is returned when the configured dictionary file cannot be opened
	ErrOpenDictionary = errors.New("failed to open name dictionary file")
)
