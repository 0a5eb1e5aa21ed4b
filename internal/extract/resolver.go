package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Locator identifies a sub-node of an article and what to read from it.
// Attrs lists attribute names in preference order; with no Attrs the
// node's text is read. An empty Selector targets the article itself.
type Locator struct {
	Selector string
	Attrs    []string
}

func Text(selector string) Locator {
	return Locator{Selector: selector}
}

func Attr(selector string, attrs ...string) Locator {
	return Locator{Selector: selector, Attrs: attrs}
}

// Resolve returns the first non-empty value produced by the candidates,
// evaluated in order against node.
func Resolve(node *goquery.Selection, candidates []Locator) (string, bool) {
	for _, loc := range candidates {
		if v, ok := loc.read(node); ok {
			return v, true
		}
	}

	return "", false
}

func (l Locator) read(node *goquery.Selection) (string, bool) {
	target := node
	if l.Selector != "" {
		target = node.Find(l.Selector)
	}
	if target.Length() == 0 {
		return "", false
	}
	target = target.First()

	if len(l.Attrs) == 0 {
		t := normalizeSpace(target.Text())
		return t, t != ""
	}

	for _, k := range l.Attrs {
		if v, ok := target.Attr(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}

	return "", false
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
