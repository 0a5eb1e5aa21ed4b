package generic

import (
	"context"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/komikat/internal/providers"
	"github.com/brogergvhs/komikat/internal/util"
	"golang.org/x/time/rate"
)

var _ providers.Source = (*Scraper)(nil)

type Scraper struct {
	client   *http.Client
	log      interface{ Debugf(string, ...any) }
	limiter  *rate.Limiter
	attempts int
	backoff  time.Duration
}

type Option func(*Scraper)

func WithLogger(l interface{ Debugf(string, ...any) }) Option {
	return func(s *Scraper) {
		s.log = l
	}
}

// WithRateLimit spaces requests rps per second apart. Zero disables it.
func WithRateLimit(rps float64) Option {
	return func(s *Scraper) {
		if rps > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

func WithRetry(attempts int, backoff time.Duration) Option {
	return func(s *Scraper) {
		s.attempts = max(1, attempts)
		s.backoff = backoff
	}
}

func NewScraper(c *http.Client, opts ...Option) *Scraper {
	s := &Scraper{
		client:   c,
		attempts: 3,
		backoff:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Document fetches target and parses it. Transport errors, timeouts and
// non-2xx answers are all reported as *providers.FetchError.
func (s *Scraper) Document(ctx context.Context, target string) (*goquery.Document, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &providers.FetchError{URL: target, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &providers.FetchError{URL: target, Err: err}
	}

	resp, err := util.DoWithRetry(s.client, req, s.attempts, s.backoff)
	if err != nil {
		return nil, &providers.FetchError{URL: target, Status: util.StatusOf(err), Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &providers.FetchError{URL: target, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &providers.FetchError{URL: target, Err: err}
	}

	if s.log != nil {
		s.log.Debugf("fetched %s (HTTP %d, content-length %d)", target, resp.StatusCode, resp.ContentLength)
	}

	return doc, nil
}
