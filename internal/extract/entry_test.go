package extract_test

import (
	"errors"
	"testing"

	"github.com/brogergvhs/komikat/internal/catalog"
	"github.com/brogergvhs/komikat/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *extract.EntryExtractor {
	t.Helper()

	x, err := extract.NewEntryExtractor("https://komiku.org/some/path", extract.DefaultFields())
	require.NoError(t, err)
	return x
}

func TestNewEntryExtractor_RejectsRelativeBase(t *testing.T) {
	t.Parallel()

	_, err := extract.NewEntryExtractor("/relative", extract.DefaultFields())
	require.Error(t, err)
}

func TestEntryExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("builds a full entry from a ranked card", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `
			<article class="ls2">
				<div class="ls2v"><a href="/manga/one-piece/"><img src="lazy.gif" data-src="https://thumbnail.komiku.org/one.jpg"></a></div>
				<div class="ls2j">
					<h3><a href="/manga/one-piece/">One Piece</a></h3>
					<span class="ls2t">Fantasi 3jt pembaca</span>
					<a class="ls2l" href="/one-piece-chapter-1100/">Chapter 1100</a>
				</div>
				<span class="svg hot">1</span>
			</article>`)

		e, err := newExtractor(t).Extract(doc.Find("article"))
		require.NoError(t, err)
		assert.Equal(t, catalog.Entry{
			Title:        "One Piece",
			DetailLink:   "https://komiku.org/manga/one-piece/",
			ChapterLabel: "Chapter 1100",
			ChapterLink:  "https://komiku.org/one-piece-chapter-1100/",
			Genre:        "Fantasi 3jt pembaca",
			ImageURL:     "https://thumbnail.komiku.org/one.jpg",
			Rank:         "1",
		}, e)
	})

	t.Run("rejects an article without a title", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `
			<article class="ls2">
				<img data-src="/x.jpg">
				<span class="ls2t">Aksi</span>
				<a class="ls2l" href="/x-chapter-1/">Chapter 1</a>
			</article>`)

		e, err := newExtractor(t).Extract(doc.Find("article"))
		require.ErrorIs(t, err, extract.ErrMissingTitle)
		assert.Equal(t, catalog.Entry{}, e)
	})

	t.Run("treats a blank heading as missing", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<article><h3><a href="/manga/x/">   </a></h3></article>`)

		_, err := newExtractor(t).Extract(doc.Find("article"))
		require.ErrorIs(t, err, extract.ErrMissingTitle)
	})

	t.Run("keeps an eager-only image scheme untouched", func(t *testing.T) {
		t.Parallel()

		for _, src := range []string{
			"http://img.example.org/a.jpg",
			"https://img.example.org/a.jpg",
		} {
			doc := parse(t, `<article><h3>Title</h3><img src="`+src+`"></article>`)

			e, err := newExtractor(t).Extract(doc.Find("article"))
			require.NoError(t, err)
			assert.Equal(t, src, e.ImageURL)
		}
	})

	t.Run("prefixes relative links with the site origin", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `
			<article class="ls8">
				<h4><a href="manga/rel/">Relative</a></h4>
				<img src="/img/rel.jpg">
				<div class="ls84"><a href="/rel-chapter-3/">Up 2 jam</a></div>
			</article>`)

		e, err := newExtractor(t).Extract(doc.Find("article"))
		require.NoError(t, err)
		assert.Equal(t, "https://komiku.org/manga/rel/", e.DetailLink)
		assert.Equal(t, "https://komiku.org/img/rel.jpg", e.ImageURL)
		assert.Equal(t, "https://komiku.org/rel-chapter-3/", e.ChapterLink)
		assert.Equal(t, "Up 2 jam", e.ChapterLabel)
	})

	t.Run("optional fields default to empty", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<article><h3>Bare</h3></article>`)

		e, err := newExtractor(t).Extract(doc.Find("article"))
		require.NoError(t, err)
		assert.Equal(t, catalog.Entry{Title: "Bare"}, e)
	})

	t.Run("falls back to a generic tag for the genre", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<article><h3>Tagged</h3><a rel="tag" href="/genre/drama/">Drama</a></article>`)

		e, err := newExtractor(t).Extract(doc.Find("article"))
		require.NoError(t, err)
		assert.Equal(t, "Drama", e.Genre)
	})
}

func TestEntryExtractor_ExtractAll(t *testing.T) {
	t.Parallel()

	doc := parse(t, `
		<section id="s">
			<article><h3>First</h3></article>
			<article><p>no heading</p></article>
			<article><h3>Third</h3></article>
		</section>`)

	results := newExtractor(t).ExtractAll("s", doc.Find("article"))
	require.Len(t, results, 3)

	var artErr *extract.ArticleError
	require.True(t, errors.As(results[1].Err, &artErr))
	assert.Equal(t, "s", artErr.Section)
	assert.Equal(t, 1, artErr.Index)
	assert.ErrorIs(t, results[1].Err, extract.ErrMissingTitle)

	entries := extract.Entries(results)
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Title)
	assert.Equal(t, "Third", entries[1].Title)
}

func TestEntryExtractor_MalformedArticles(t *testing.T) {
	t.Parallel()

	t.Run("nil article is reported as malformed", func(t *testing.T) {
		t.Parallel()

		e, err := newExtractor(t).Extract(nil)
		require.ErrorIs(t, err, extract.ErrMalformed)
		assert.Equal(t, catalog.Entry{}, e)
	})

	t.Run("a broken node does not stop its siblings", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `
			<section id="Komik_Hot_Manga">
				<article class="ls2"><h3>First</h3></article>
				<article class="ls2"><h3>Second</h3></article>
			</section>`)

		articles := doc.Find("article")
		require.Equal(t, 2, articles.Length())
		articles.Nodes = append(articles.Nodes[:1:1], nil, articles.Nodes[1])

		results := newExtractor(t).ExtractAll("Komik_Hot_Manga", articles)
		require.Len(t, results, 3)

		var artErr *extract.ArticleError
		require.True(t, errors.As(results[1].Err, &artErr))
		assert.Equal(t, 1, artErr.Index)
		assert.ErrorIs(t, results[1].Err, extract.ErrMalformed)

		entries := extract.Entries(results)
		require.Len(t, entries, 2)
		assert.Equal(t, "First", entries[0].Title)
		assert.Equal(t, "Second", entries[1].Title)
	})
}
