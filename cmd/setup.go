package cmd

import (
	"context"
	"time"

	"github.com/brogergvhs/komikat/internal/builder"
	"github.com/brogergvhs/komikat/internal/catalog"
	"github.com/brogergvhs/komikat/internal/config"
	"github.com/brogergvhs/komikat/internal/providers/generic"
	"github.com/brogergvhs/komikat/internal/ui"
	"github.com/brogergvhs/komikat/internal/util"
)

// pipeline wires the fetcher and builder described by cfg.
type pipeline struct {
	builder *builder.Builder
	scraper *generic.Scraper
	stats   *ui.Stats
}

func newPipeline(cfg *config.Config, logSvc *ui.Logger, progress func(done, total int)) (*pipeline, error) {
	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout(),
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return nil, err
	}

	scr := generic.NewScraper(client,
		generic.WithLogger(logSvc),
		generic.WithRateLimit(cfg.RequestsPerSecond),
		generic.WithRetry(cfg.Retries, 500*time.Millisecond),
	)

	if cfg.SkipListing {
		logSvc.Infof("listing page disabled, sections use homepage entries only")
	}

	stats := &ui.Stats{}
	b, err := builder.New(builder.Options{
		BaseURL:       cfg.BaseURL,
		ListingURL:    cfg.Listing(),
		Sections:      cfg.Sections,
		FilterID:      cfg.FilterID,
		DescriptionID: cfg.DescriptionID,
		Log:           logSvc,
		Stats:         stats,
		Progress:      progress,
	})
	if err != nil {
		return nil, err
	}

	return &pipeline{builder: b, scraper: scr, stats: stats}, nil
}

func (p *pipeline) build(ctx context.Context) *catalog.Catalog {
	return p.builder.Run(ctx, p.scraper)
}
