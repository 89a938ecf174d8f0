package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup by name or title matches no row.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousTitle is returned by title-only album lookups that match
	// albums of more than one artist.
	ErrAmbiguousTitle = errors.New("album title is ambiguous")

	// ErrInvalidQuantity is returned when a suggestion asks for fewer than one
	// item or more items than the pool holds.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidInput marks user input rejected before reaching the store.
	ErrInvalidInput = errors.New("invalid input")
)
