package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/komikat/internal/catalog"
)

const genreControl = "genre"

// placeholder is the display text of the form's default genre option.
const placeholder = "genre 1"

// Options reads the choices of one selection control. Blank values and
// the placeholder option are skipped; the first occurrence of a value wins.
func Options(control *goquery.Selection) []catalog.GenreOption {
	var out []catalog.GenreOption
	seen := map[string]bool{}

	control.Find("option").Each(func(_ int, opt *goquery.Selection) {
		slug := strings.TrimSpace(opt.AttrOr("value", ""))
		name := normalizeSpace(opt.Text())

		if slug == "" || strings.EqualFold(name, placeholder) || seen[slug] {
			return
		}
		seen[slug] = true

		if name == "" {
			name = slug
		}
		out = append(out, catalog.GenreOption{Slug: slug, Name: name})
	})

	return out
}

func allOptions(control *goquery.Selection) []catalog.GenreOption {
	var out []catalog.GenreOption
	control.Find("option").Each(func(_ int, opt *goquery.Selection) {
		out = append(out, catalog.GenreOption{
			Slug: strings.TrimSpace(opt.AttrOr("value", "")),
			Name: normalizeSpace(opt.Text()),
		})
	})
	return out
}

// Genres reads the genre control inside the filter section, or anywhere
// in the document when the section is missing.
func Genres(doc *goquery.Document, filterID string) []catalog.GenreOption {
	return Options(controls(doc, filterID).Filter(`[name="` + genreControl + `"]`).First())
}

// Filters reads every other named control of the filter section. Unlike
// genres, their options are kept as-is, blank values included.
func Filters(doc *goquery.Document, filterID string) map[string][]catalog.GenreOption {
	out := map[string][]catalog.GenreOption{}

	controls(doc, filterID).Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.AttrOr("name", ""))
		if name == "" || name == genreControl {
			return
		}
		if _, dup := out[name]; dup {
			return
		}
		if opts := allOptions(s); len(opts) > 0 {
			out[name] = opts
		}
	})

	if len(out) == 0 {
		return nil
	}

	return out
}

// Description returns the first paragraph of a section.
func Description(doc *goquery.Document, sectionID string) string {
	if sectionID == "" {
		return ""
	}

	v, _ := Resolve(doc.Find(`[id="`+sectionID+`"]`).First(), []Locator{Text("p")})
	return v
}

func controls(doc *goquery.Document, filterID string) *goquery.Selection {
	if filterID != "" {
		if s := doc.Find(`[id="` + filterID + `"] select`); s.Length() > 0 {
			return s
		}
	}

	return doc.Find("select")
}
