package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck indicates a deck that normalized to zero cards.
var ErrEmptyDeck = errors.New("deck contains no cards")

// InvalidInputError indicates a deck reference that could not be parsed.
type InvalidInputError struct {
	Ref    string
	Reason string
}

// Error implements the error interface for InvalidInputError.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid deck reference %q: %s", e.Ref, e.Reason)
}

// UpstreamError indicates a failed request to a remote service: a transport
// failure, a timeout, or a non-2xx status.
type UpstreamError struct {
	Service    string
	StatusCode int
	Err        error
}

// Error implements the error interface for UpstreamError.
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed (HTTP %d)", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// InvalidResponseError indicates a remote payload that could not be decoded.
type InvalidResponseError struct {
	Service string
	Err     error
}

// Error implements the error interface for InvalidResponseError.
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%s returned an invalid response: %v", e.Service, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// IsInvalidInput returns true if the error is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

// IsUpstream returns true if the error is an UpstreamError.
func IsUpstream(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}

// IsInvalidResponse returns true if the error is an InvalidResponseError.
func IsInvalidResponse(err error) bool {
	var e *InvalidResponseError
	return errors.As(err, &e)
}
