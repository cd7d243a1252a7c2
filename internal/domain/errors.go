package domain

import "errors"

// Rating validation errors
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
)
