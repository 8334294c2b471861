package domain

import "errors"

var (
	// ErrAmbiguousPair means the two words could not be resolved into one
	// russian and one english word.
	ErrAmbiguousPair = errors.New("ambiguous language pair")

	// ErrNoDictionary means the user never created a dictionary.
	ErrNoDictionary = errors.New("user has no dictionary")

	// ErrPairNotFound means no stored pair matched the request.
	ErrPairNotFound = errors.New("pair not found")

	// ErrNotPersisted means the store reported that a mutation did not
	// take effect.
	ErrNotPersisted = errors.New("change was not persisted")
)
