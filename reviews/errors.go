package reviews

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned by PickRandom when no reviews are loaded.
var ErrEmptyCollection = errors.New("no reviews loaded")

// TransportError means the review source could not be retrieved at all:
// either the request failed outright or the origin answered non-2xx.
type TransportError struct {
	StatusCode int    // 0 when the failure happened before a response
	Message    string // transport error text when StatusCode is 0
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("review source returned status %d", e.StatusCode)
	}
	return "review source unreachable: " + e.Message
}

// MalformedInputError carries the first structural error the table parser
// reported. The load is abandoned wholesale; there is no partial result.
type MalformedInputError struct {
	Message string
}

func (e *MalformedInputError) Error() string {
	return "malformed review table: " + e.Message
}
