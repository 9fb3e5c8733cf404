package bangumi

import (
	"errors"
	"fmt"

	"github.com/handiism/blog-index/internal/http"
)

// FetchError is returned when Bangumi answers a request with a non-success status.
type FetchError struct {
	// What describes the request, e.g. "count" or "data".
	What       string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch Bangumi %s. Status: %d %s", e.What, e.StatusCode, e.Status)
}

// CollectionError is returned when a whole collection could not be assembled.
//
// It names the collection and wraps the error of the page request that
// failed, so errors.As still finds the underlying *FetchError.
type CollectionError struct {
	Collection CollectionType
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("could not fetch Bangumi %q collection: %v", e.Collection.String(), e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// asFetchError converts an HTTP status error to a *FetchError and passes
// every other error through unchanged.
func asFetchError(what string, err error) error {
	var se *http.StatusError
	if errors.As(err, &se) {
		return &FetchError{What: what, StatusCode: se.StatusCode, Status: se.Status}
	}
	return err
}
