package extract_test

import (
	"testing"

	"github.com/brogergvhs/komikat/internal/catalog"
	"github.com/brogergvhs/komikat/internal/extract"
	"github.com/stretchr/testify/assert"
)

const filterFixture = `
	<section id="Trending_Komik"><p>  Baca komik   online gratis. </p></section>
	<section id="Filter">
		<p>Cari komik  berdasarkan genre.</p>
		<form>
			<select name="tipe">
				<option value="">Tipe</option>
				<option value="manga">Manga</option>
				<option value="manhwa">Manhwa</option>
			</select>
			<select name="genre">
				<option value="">Genre 1</option>
				<option value="action">Action</option>
				<option value=""></option>
			</select>
			<select name="genre2">
				<option value="">Genre 2</option>
			</select>
		</form>
	</section>`

func TestGenres(t *testing.T) {
	t.Parallel()

	t.Run("drops blank and placeholder options", func(t *testing.T) {
		t.Parallel()

		got := extract.Genres(parse(t, filterFixture), "Filter")
		assert.Equal(t, []catalog.GenreOption{{Slug: "action", Name: "Action"}}, got)
	})

	t.Run("placeholder is recognised case-insensitively even with a value", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `
			<select name="genre">
				<option value="genre1">  GENRE   1 </option>
				<option value="romance">Romance</option>
				<option value="romance">Romance again</option>
			</select>`)

		got := extract.Genres(doc, "Filter")
		assert.Equal(t, []catalog.GenreOption{{Slug: "romance", Name: "Romance"}}, got)
	})

	t.Run("no genre control yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.Genres(parse(t, `<p>none</p>`), "Filter"))
	})
}

func TestFilters(t *testing.T) {
	t.Parallel()

	t.Run("placeholder rule only applies to genres", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `
			<section id="Filter">
				<select name="urutan">
					<option value="">Genre 1</option>
					<option value="populer">Populer</option>
				</select>
			</section>`)

		got := extract.Filters(doc, "Filter")
		assert.Equal(t, []catalog.GenreOption{{Slug: "", Name: "Genre 1"}, {Slug: "populer", Name: "Populer"}}, got["urutan"])
	})

	got := extract.Filters(parse(t, filterFixture), "Filter")
	assert.Equal(t, map[string][]catalog.GenreOption{
		"tipe":   {{Slug: "", Name: "Tipe"}, {Slug: "manga", Name: "Manga"}, {Slug: "manhwa", Name: "Manhwa"}},
		"genre2": {{Slug: "", Name: "Genre 2"}},
	}, got)
}

func TestDescription(t *testing.T) {
	t.Parallel()

	doc := parse(t, filterFixture)
	assert.Equal(t, "Baca komik online gratis.", extract.Description(doc, "Trending_Komik"))
	assert.Equal(t, "Cari komik berdasarkan genre.", extract.Description(doc, "Filter"))
	assert.Empty(t, extract.Description(doc, "Missing"))
}
