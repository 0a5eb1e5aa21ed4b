package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Locate returns the article nodes of one section in document order.
// An empty sectionID searches the whole document. A missing section
// yields an empty selection, not an error.
//
// A marker that is a bare class name ("ls2") selects article.ls2; any
// other marker is used as a CSS selector as-is.
func Locate(doc *goquery.Document, sectionID string, markers []string) *goquery.Selection {
	root := doc.Selection
	if sectionID != "" {
		root = doc.Find(`[id="` + sectionID + `"]`).First()
	}

	sel := markerSelector(markers)
	if root.Length() == 0 || sel == "" {
		return root.Slice(0, 0)
	}

	return root.Find(sel)
}

func markerSelector(markers []string) string {
	parts := make([]string, 0, len(markers))
	for _, m := range markers {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if strings.ContainsAny(m, " .#[:>,") {
			parts = append(parts, m)
			continue
		}
		parts = append(parts, "article."+m)
	}

	return strings.Join(parts, ", ")
}
