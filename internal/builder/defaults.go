package builder

const (
	DefaultBaseURL       = "https://komiku.org"
	DefaultListingURL    = "https://komiku.org/pustaka/"
	DefaultFilterID      = "Filter"
	DefaultDescriptionID = "Trending_Komik"
)

// DefaultSections describes the komiku homepage.
func DefaultSections() []SectionDef {
	return []SectionDef{
		{ID: "Trending_Komik", Label: "Trending", Markers: []string{"ls2"}},
		{ID: "Rekomendasi_Komik", Label: "Rekomendasi", Markers: []string{"ls2"}},
		{ID: "Komik_Hot_Manga", Label: "Hot Manga", Markers: []string{"ls2"}},
		{ID: "Komik_Hot_Manhwa", Label: "Hot Manhwa", Markers: []string{"ls2"}},
		{ID: "Komik_Hot_Manhua", Label: "Hot Manhua", Markers: []string{"ls2"}},
		{
			ID:        "Terbaru",
			Label:     "Terbaru",
			Markers:   []string{"ls8"},
			Secondary: &SecondaryDef{Markers: []string{"div.bge", "ls4"}},
		},
	}
}
