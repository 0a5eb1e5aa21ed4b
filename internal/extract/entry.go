package extract

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/komikat/internal/catalog"
)

var (
	ErrMissingTitle = errors.New("article has no title")
	ErrMalformed    = errors.New("malformed article")
)

// ArticleError reports why one article in a section produced no entry.
type ArticleError struct {
	Section string
	Index   int
	Err     error
}

func (e *ArticleError) Error() string {
	return fmt.Sprintf("section %s article %d: %v", e.Section, e.Index, e.Err)
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

// FieldTable holds the ordered locators for every entry field.
type FieldTable struct {
	Title        []Locator
	DetailLink   []Locator
	ChapterLabel []Locator
	ChapterLink  []Locator
	Genre        []Locator
	Image        []Locator
	Rank         []Locator
}

// DefaultFields covers the card layouts used on the komiku homepage
// (ls2, ls8) and its listing pages (bge, ls4).
func DefaultFields() FieldTable {
	return FieldTable{
		Title: []Locator{
			Text("h3 a"), Text("h3"), Text("h4 a"), Text("h4"),
		},
		DetailLink: []Locator{
			Attr("h3 a", "href"), Attr("h4 a", "href"), Attr(".bgei a", "href"),
		},
		ChapterLabel: []Locator{
			Text("a.ls2l"), Text("a.ls24"), Text("a.ls84"), Text(".ls84"), Text(".new1 a"),
		},
		ChapterLink: []Locator{
			Attr("a.ls2l", "href"), Attr("a.ls24", "href"), Attr("a.ls84", "href"),
			Attr(".ls84 a", "href"), Attr(".new1 a", "href"),
		},
		Genre: []Locator{
			Text("span.ls2t"), Text("span.ls4s"), Text(".ls8t"), Text(".tpe1_inf b"),
			Text("[rel~=tag]"), Text(".tag"), Text(".genre"),
		},
		Image: []Locator{
			Attr("img", "data-src", "data-lazy-src", "data-original", "src"),
		},
		Rank: []Locator{
			Text("span.svg.hot"), Text("span.hot"), Text(".ls2r"),
		},
	}
}

type EntryExtractor struct {
	fields FieldTable
	base   *url.URL
}

func NewEntryExtractor(baseURL string, fields FieldTable) (*EntryExtractor, error) {
	base, err := origin(baseURL)
	if err != nil {
		return nil, err
	}

	return &EntryExtractor{fields: fields, base: base}, nil
}

// Extract builds one entry from an article node. Articles without a
// title are rejected with ErrMissingTitle.
func (x *EntryExtractor) Extract(article *goquery.Selection) (e catalog.Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, err = catalog.Entry{}, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	title, ok := Resolve(article, x.fields.Title)
	if !ok {
		return catalog.Entry{}, ErrMissingTitle
	}

	e.Title = title
	e.DetailLink = x.url(article, x.fields.DetailLink)
	e.ChapterLabel, _ = Resolve(article, x.fields.ChapterLabel)
	e.ChapterLink = x.url(article, x.fields.ChapterLink)
	e.Genre, _ = Resolve(article, x.fields.Genre)
	e.ImageURL = x.url(article, x.fields.Image)
	e.Rank, _ = Resolve(article, x.fields.Rank)

	return e, nil
}

func (x *EntryExtractor) url(article *goquery.Selection, candidates []Locator) string {
	v, _ := Resolve(article, candidates)
	return absolute(x.base, v)
}

// Result is the outcome of extracting one article.
type Result struct {
	Entry catalog.Entry
	Err   error
}

// ExtractAll extracts every article in order. Failures are reported per
// article as *ArticleError and never stop the remaining articles.
func (x *EntryExtractor) ExtractAll(section string, articles *goquery.Selection) []Result {
	out := make([]Result, 0, articles.Length())

	articles.Each(func(i int, a *goquery.Selection) {
		e, err := x.Extract(a)
		if err != nil {
			err = &ArticleError{Section: section, Index: i, Err: err}
		}
		out = append(out, Result{Entry: e, Err: err})
	})

	return out
}

// Entries keeps the successful results.
func Entries(results []Result) []catalog.Entry {
	out := make([]catalog.Entry, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Entry)
		}
	}

	return out
}
