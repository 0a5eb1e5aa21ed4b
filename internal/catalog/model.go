// Package catalog holds the typed homepage catalog, the title de-duplicator
// and the single-slot snapshot cache that serves it.
package catalog

import (
	"encoding/json"
	"time"
)

type Entry struct {
	Title        string `json:"title"`
	DetailLink   string `json:"detail_link"`
	ChapterLabel string `json:"chapter_label"`
	ChapterLink  string `json:"chapter_link"`
	Genre        string `json:"genre"`
	ImageURL     string `json:"image_url"`
	Rank         string `json:"rank"`
}

type Section struct {
	Label   string  `json:"title"`
	Entries []Entry `json:"items"`
}

type GenreOption struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Catalog is one computed homepage view. A catalog with Err set carries
// no sections.
type Catalog struct {
	Sections    []Section
	Genres      []GenreOption
	Description string
	FilterInfo  string
	Filters     map[string][]GenreOption

	Err error

	BuildID string
	BuiltAt time.Time
}

// Failed returns a catalog that carries only the build error.
func Failed(err error) *Catalog {
	return &Catalog{Err: err}
}

func (c *Catalog) Failed() bool {
	return c != nil && c.Err != nil
}

// Section returns the section with the given label, if present.
func (c *Catalog) Section(label string) (Section, bool) {
	for _, s := range c.Sections {
		if s.Label == label {
			return s, true
		}
	}

	return Section{}, false
}

// EntryCount is the number of entries across all sections.
func (c *Catalog) EntryCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Entries)
	}

	return n
}

type catalogBody struct {
	Sections    []Section                `json:"sections"`
	Genres      []GenreOption            `json:"genres"`
	Description string                   `json:"description,omitempty"`
	FilterInfo  string                   `json:"filter_info,omitempty"`
	Filters     map[string][]GenreOption `json:"filters,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	if c.Err != nil {
		return json.Marshal(errorBody{Error: c.Err.Error()})
	}

	body := catalogBody{
		Sections:    c.Sections,
		Genres:      c.Genres,
		Description: c.Description,
		FilterInfo:  c.FilterInfo,
		Filters:     c.Filters,
	}
	if body.Sections == nil {
		body.Sections = []Section{}
	}
	if body.Genres == nil {
		body.Genres = []GenreOption{}
	}

	return json.Marshal(body)
}
