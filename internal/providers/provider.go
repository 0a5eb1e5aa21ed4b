package providers

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Source supplies parsed documents for one catalog build.
type Source interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

// FetchError reports a page that could not be obtained. Status is the HTTP
// status code when the server answered, zero otherwise.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
	}

	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
