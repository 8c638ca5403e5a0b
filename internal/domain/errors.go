package domain

import "errors"

var (
	// ErrInvalidFormat is returned for salary text that cannot be parsed
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidQuery is returned for any other malformed search field
	ErrInvalidQuery = errors.New("invalid query")

	// ErrSourceUnavailable wraps a provider failure; it never leaves the search service
	ErrSourceUnavailable = errors.New("source unavailable")
)
