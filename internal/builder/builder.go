// Package builder assembles the homepage catalog from one primary page and
// an optional secondary listing page.
package builder

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/komikat/internal/catalog"
	"github.com/brogergvhs/komikat/internal/extract"
	"github.com/brogergvhs/komikat/internal/providers"
	"github.com/brogergvhs/komikat/internal/ui"
)

var ErrNoPrimary = errors.New("primary document unavailable")

// SecondaryDef names where a section's extra entries live on the listing
// page. An empty SectionID means the whole listing document.
type SecondaryDef struct {
	SectionID string   `yaml:"section_id"`
	Markers   []string `yaml:"markers"`
}

type SectionDef struct {
	ID        string        `yaml:"id"`
	Label     string        `yaml:"label"`
	Markers   []string      `yaml:"markers"`
	Secondary *SecondaryDef `yaml:"secondary,omitempty"`
}

type Documents struct {
	Primary   *goquery.Document
	Secondary *goquery.Document
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Options struct {
	BaseURL    string
	ListingURL string
	Sections   []SectionDef

	// FilterID and DescriptionID name the sections holding the filter
	// form and the site blurb.
	FilterID      string
	DescriptionID string

	Fields extract.FieldTable
	Log    Logger
	Stats  *ui.Stats

	// Progress is called after each section with the sections done so far.
	Progress func(done, total int)
}

type Builder struct {
	opts      Options
	extractor *extract.EntryExtractor
	log       Logger
	stats     *ui.Stats
}

func New(opts Options) (*Builder, error) {
	fields := opts.Fields
	if len(fields.Title) == 0 {
		fields = extract.DefaultFields()
	}

	x, err := extract.NewEntryExtractor(opts.BaseURL, fields)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		opts:      opts,
		extractor: x,
		log:       opts.Log,
		stats:     opts.Stats,
	}
	if b.log == nil {
		b.log = nopLogger{}
	}
	if b.stats == nil {
		b.stats = &ui.Stats{}
	}

	return b, nil
}

// Run fetches the pages from src and builds the catalog. Failing to fetch
// the primary page fails the whole build; a missing listing page only
// drops the secondary contributions.
func (b *Builder) Run(ctx context.Context, src providers.Source) *catalog.Catalog {
	b.stats.Builds.Add(1)

	primary, err := src.Document(ctx, b.opts.BaseURL)
	if err != nil {
		b.stats.Failures.Add(1)
		b.log.Errorf("catalog build failed: %v", err)
		return catalog.Failed(err)
	}

	docs := Documents{Primary: primary}
	if b.needsSecondary() {
		sec, err := src.Document(ctx, b.opts.ListingURL)
		if err != nil {
			b.log.Warnf("listing page skipped: %v", err)
		} else {
			docs.Secondary = sec
		}
	}

	return b.Build(docs)
}

// Build extracts every configured section from already parsed documents.
func (b *Builder) Build(docs Documents) *catalog.Catalog {
	if docs.Primary == nil {
		return catalog.Failed(ErrNoPrimary)
	}

	cat := &catalog.Catalog{}
	total := len(b.opts.Sections)

	for i, def := range b.opts.Sections {
		lists := [][]catalog.Entry{
			b.entries(def.ID, extract.Locate(docs.Primary, def.ID, def.Markers)),
		}

		if def.Secondary != nil && docs.Secondary != nil {
			articles := extract.Locate(docs.Secondary, def.Secondary.SectionID, def.Secondary.Markers)
			lists = append(lists, b.entries(def.ID, articles))
		}

		merged := catalog.Merge(lists...)
		if len(merged) == 0 {
			b.log.Debugf("section %s has no entries, omitted", def.ID)
		} else {
			cat.Sections = append(cat.Sections, catalog.Section{Label: def.Label, Entries: merged})
			b.stats.Sections.Add(1)
			b.stats.Entries.Add(int64(len(merged)))
		}

		if b.opts.Progress != nil {
			b.opts.Progress(i+1, total)
		}
	}

	cat.Genres = extract.Genres(docs.Primary, b.opts.FilterID)
	cat.Filters = extract.Filters(docs.Primary, b.opts.FilterID)
	cat.Description = extract.Description(docs.Primary, b.opts.DescriptionID)
	cat.FilterInfo = extract.Description(docs.Primary, b.opts.FilterID)

	b.log.Infof("catalog built: %d sections, %d entries, %d genres",
		len(cat.Sections), cat.EntryCount(), len(cat.Genres))

	return cat
}

func (b *Builder) entries(section string, articles *goquery.Selection) []catalog.Entry {
	results := b.extractor.ExtractAll(section, articles)
	for _, r := range results {
		if r.Err != nil {
			b.stats.Dropped.Add(1)
			b.log.Debugf("dropped: %v", r.Err)
		}
	}

	return extract.Entries(results)
}

func (b *Builder) needsSecondary() bool {
	if b.opts.ListingURL == "" {
		return false
	}

	for _, def := range b.opts.Sections {
		if def.Secondary != nil {
			return true
		}
	}

	return false
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
