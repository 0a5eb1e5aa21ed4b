package mock

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/komikat/internal/providers"
)

var _ providers.Source = (*Source)(nil)

// Source is a mock implementation of providers.Source.
type Source struct {
	DocumentFn func(ctx context.Context, url string) (*goquery.Document, error)
}

func (s *Source) Document(ctx context.Context, url string) (*goquery.Document, error) {
	return s.DocumentFn(ctx, url)
}

// Pages serves fixed HTML per URL. Unknown URLs answer with a 404
// FetchError, and URLs listed in errs fail with the given error.
func Pages(pages map[string]string, errs map[string]error) *Source {
	return &Source{
		DocumentFn: func(_ context.Context, url string) (*goquery.Document, error) {
			if err, ok := errs[url]; ok {
				return nil, err
			}
			html, ok := pages[url]
			if !ok {
				return nil, &providers.FetchError{URL: url, Status: 404}
			}
			return goquery.NewDocumentFromReader(strings.NewReader(html))
		},
	}
}
