package extract_test

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/komikat/internal/extract"
	"github.com/stretchr/testify/assert"
)

func titles(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Find("h3").Text())
	})
	return out
}

func TestLocate(t *testing.T) {
	t.Parallel()

	doc := parse(t, `
		<section id="Terbaru">
			<article class="ls8"><h3>A</h3></article>
			<article class="ls4"><h3>B</h3></article>
			<article class="other"><h3>skip</h3></article>
			<article class="ls8"><h3>C</h3></article>
		</section>
		<section id="Elsewhere">
			<article class="ls8"><h3>outside</h3></article>
			<div class="bge"><h3>card</h3></div>
		</section>`)

	t.Run("collects every marker in document order", func(t *testing.T) {
		t.Parallel()

		got := extract.Locate(doc, "Terbaru", []string{"ls4", "ls8"})
		assert.Equal(t, []string{"A", "B", "C"}, titles(got))
	})

	t.Run("missing section yields nothing", func(t *testing.T) {
		t.Parallel()

		got := extract.Locate(doc, "Komik_Hot_Manga", []string{"ls2"})
		assert.Equal(t, 0, got.Length())
	})

	t.Run("no markers yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, extract.Locate(doc, "Terbaru", nil).Length())
	})

	t.Run("empty section id searches the whole document", func(t *testing.T) {
		t.Parallel()

		got := extract.Locate(doc, "", []string{"div.bge"})
		assert.Equal(t, []string{"card"}, titles(got))
	})
}
