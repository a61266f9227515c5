// Package reviews resolves a product URL or pasted text into a normalized review list.
package reviews

import "fmt"

// FetchError represents a network or HTTP failure while fetching a product page.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ParseError means the page was fetched but contained no review-like
// fragments. It is non-fatal: the resolver returns an empty list alongside it
// and downstream stages handle zero reviews.
type ParseError struct {
	URL     string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %s", e.URL, e.Message)
}
