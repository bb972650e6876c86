package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog/catalogtest"
)

func newTestPager(t *testing.T, books, pageSize int) (*Pager, *catalog.Store, *ListRenderer) {
	t.Helper()
	store, err := catalog.NewStore(catalogtest.Generate(books, pageSize))
	require.NoError(t, err)
	r := &ListRenderer{}
	return NewPager(store, r), store, r
}

func TestPager_FortyTwoBooksScenario(t *testing.T) {
	pager, _, r := newTestPager(t, 42, 36)

	pager.Reset()
	assert.Len(t, r.Items(), 36)
	assert.Equal(t, ButtonState{Enabled: true, Remaining: 6}, pager.Button())
	assert.Equal(t, "Show more (6)", pager.Button().Label())

	require.True(t, pager.Advance())
	assert.Len(t, r.Items(), 42)
	assert.Equal(t, "b37", r.Items()[36].ID)
	assert.Equal(t, ButtonState{Enabled: false, Remaining: 0}, pager.Button())
	assert.Equal(t, "Show more (0)", pager.Button().Label())
}

func TestPager_RemainingDecreasesByPageSizeThenStays(t *testing.T) {
	pager, store, r := newTestPager(t, 23, 5)
	pager.Reset()

	expected := []int{18, 13, 8, 3, 0}
	assert.Equal(t, expected[0], pager.RemainingCount())
	for _, want := range expected[1:] {
		require.True(t, pager.Advance())
		assert.Equal(t, want, pager.RemainingCount())
	}

	renders := r.Renders()
	page := store.Page()
	for i := 0; i < 3; i++ {
		assert.False(t, pager.Advance())
		assert.Equal(t, 0, pager.RemainingCount())
	}
	assert.Equal(t, renders, r.Renders(), "exhausted pager must not render")
	assert.Equal(t, page, store.Page())
	assert.Len(t, r.Items(), 23)
}

func TestPager_VisibleListIsPrefixOfMatches(t *testing.T) {
	pager, store, r := newTestPager(t, 17, 4)
	pager.Reset()

	for {
		ids := make([]string, len(r.Items()))
		for i, p := range r.Items() {
			ids[i] = p.ID
		}
		assert.Equal(t, catalogtest.IDs(store.Matches()[:pager.Visible()]), ids)
		if !pager.Advance() {
			break
		}
	}
}

func TestPager_ResetReplacesFromFirstPage(t *testing.T) {
	pager, store, r := newTestPager(t, 30, 4)
	pager.Reset()
	pager.Advance()
	pager.Advance()
	require.Equal(t, 3, store.Page())

	store.SetMatches(catalog.Filter(store.Books(), catalog.Criteria{Genre: "g1"}))
	pager.Reset()

	assert.Equal(t, 1, store.Page())
	assert.Equal(t, []string{"b01", "b10", "b19", "b28"}, previewIDs(r.Items()))
	assert.Equal(t, 0, pager.RemainingCount())
}

func TestPager_EmptyMatches(t *testing.T) {
	pager, store, r := newTestPager(t, 10, 4)
	store.SetMatches(nil)
	pager.Reset()

	assert.Empty(t, r.Items())
	assert.False(t, pager.Button().Enabled)
	assert.False(t, pager.Advance())
}

func TestPreviews_ResolvesAuthorsAndCaps(t *testing.T) {
	cat := catalogtest.Generate(3, 10)
	cat.Books[2].Author = "ghost"

	items := Previews(cat, cat.Books, 10)
	require.Len(t, items, 3)
	assert.Equal(t, Preview{ID: "b01", Image: "https://img.example/1.jpg", Title: "Book Number 1", Author: "Ada Lovelace"}, items[0])
	assert.Equal(t, "", items[2].Author)

	assert.Len(t, Previews(cat, cat.Books, 2), 2)
	assert.Empty(t, Previews(cat, cat.Books, -1))
}

func TestListRenderer_AppendAndReplace(t *testing.T) {
	r := &ListRenderer{}
	r.Render([]Preview{{ID: "1"}}, Replace)
	r.Render([]Preview{{ID: "2"}, {ID: "3"}}, Append)
	assert.Equal(t, []string{"1", "2", "3"}, previewIDs(r.Items()))

	r.Render([]Preview{{ID: "4"}}, Replace)
	assert.Equal(t, []string{"4"}, previewIDs(r.Items()))
	assert.Equal(t, 3, r.Renders())
	assert.Equal(t, "append", Append.String())
}

func previewIDs(items []Preview) []string {
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}
