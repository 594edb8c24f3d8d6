package catalog

import "errors"

// Errors returned by the catalog client. Transport errors are wrapped as-is.
var (
	// ErrUnexpectedStatus is returned for any non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrMalformed is returned when a response body does not decode or lacks
	// a field the card view requires.
	ErrMalformed = errors.New("malformed catalog response")
)
