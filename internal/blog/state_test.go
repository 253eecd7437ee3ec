package blog

import (
	"net/url"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestBrowserDefaultList(t *testing.T) {
	t.Parallel()
	b := NewBrowser(shippedCatalog(t), 0)
	require.Equal(t, DefaultPageSize, b.PageSize())
	require.Equal(t, ModeList, b.Mode())

	v := b.List()
	require.Equal(t, []int{1, 2, 3}, ids(v.Posts))
	require.Equal(t, 6, v.Total)
	require.Equal(t, 2, v.PageCount)
	require.Equal(t, []int{1, 2}, v.Pages)
	require.False(t, v.HasPrev())
	require.True(t, v.HasNext())
}

func TestBrowserPageResetRule(t *testing.T) {
	t.Parallel()
	b := NewBrowser(shippedCatalog(t), 3)

	b.SetPage(2)
	require.Equal(t, 2, b.State().CurrentPage)
	require.Equal(t, []int{4, 5, 6}, ids(b.List().Posts))
	require.True(t, b.List().HasPrev())
	require.False(t, b.List().HasNext())

	b.SetPage(3)
	require.Equal(t, 1, b.State().CurrentPage, "out of range pages reset to 1")
	b.SetPage(-4)
	require.Equal(t, 1, b.State().CurrentPage)
}

func TestBrowserFilterChangesResetPage(t *testing.T) {
	t.Parallel()
	b := NewBrowser(shippedCatalog(t), 3)

	b.SetPage(2)
	b.SetSearch("react")
	require.Equal(t, 1, b.State().CurrentPage)
	require.Equal(t, []int{1, 2}, ids(b.List().Posts))

	b.SetPage(2)
	require.Equal(t, 1, b.State().CurrentPage)

	b.SetSearch("")
	b.SetPage(2)
	b.SetCategory("MongoDB")
	require.Equal(t, 1, b.State().CurrentPage)
	require.Equal(t, []int{6}, ids(b.List().Posts))

	b.SetCategory("")
	require.Equal(t, AllCategories, b.State().SelectedCategory)
}

func TestBrowserEmptyResult(t *testing.T) {
	t.Parallel()
	b := NewBrowser(shippedCatalog(t), 3)
	b.SetSearch("no such words")

	v := b.List()
	require.Empty(t, v.Posts)
	require.Zero(t, v.PageCount)
	require.Empty(t, v.Pages)
	require.False(t, v.HasNext())
}

func TestBrowserSelectAndGoBack(t *testing.T) {
	t.Parallel()
	b := NewBrowser(shippedCatalog(t), 3)
	b.SetCategory(AllCategories)
	b.SetPage(2)
	before := b.State()

	b.SelectPost("mern-stack-comprehensive-guide")
	require.Equal(t, ModeDetail, b.Mode())
	d := b.Detail()
	require.True(t, d.Found)
	require.Equal(t, 1, d.Post.ID)
	require.Contains(t, d.Post.Content, "## What is the MERN stack?")

	b.GoBack()
	require.Equal(t, ModeList, b.Mode())
	require.Equal(t, before, b.State())
	require.Equal(t, []int{4, 5, 6}, ids(b.List().Posts))
}

func TestBrowserSelectMissingPost(t *testing.T) {
	t.Parallel()
	b := NewBrowser(shippedCatalog(t), 3)
	b.SetSearch("2025")
	before := b.State()

	b.SelectPost("nonexistent-slug")
	d := b.Detail()
	require.False(t, d.Found)
	require.Nil(t, d.Suggestion)
	require.Equal(t, before.SearchText, b.State().SearchText)
	require.Equal(t, before.SelectedCategory, b.State().SelectedCategory)
	require.Equal(t, before.CurrentPage, b.State().CurrentPage)

	b.SelectPost("mongodb-aggregation-pipline-explained")
	d = b.Detail()
	require.False(t, d.Found)
	require.NotNil(t, d.Suggestion)
	require.Equal(t, "mongodb-aggregation-pipeline-explained", d.Suggestion.Slug)

	b.GoBack()
	require.Equal(t, before, b.State())
}

func TestBrowserRestore(t *testing.T) {
	t.Parallel()
	b := NewBrowser(shippedCatalog(t), 3)

	b.Restore(ViewState{SearchText: "mongodb", CurrentPage: 2})
	require.Equal(t, AllCategories, b.State().SelectedCategory)
	require.Equal(t, 1, b.State().CurrentPage, "only one page of results")

	b.Restore(ViewState{SelectedCategory: AllCategories, CurrentPage: 2})
	require.Equal(t, 2, b.State().CurrentPage)
}

func TestViewStateURLs(t *testing.T) {
	t.Parallel()
	s := NewViewState()
	require.Equal(t, "/blog", s.ListURL())
	require.Equal(t, "/blog/page/2", s.PageURL(2))
	require.Equal(t, "/blog/designing-intuitive-ui-ux", s.PostURL("designing-intuitive-ui-ux"))

	s.SearchText = "node js"
	s.SelectedCategory = "Node.js"
	s.CurrentPage = 2
	require.Equal(t, "/blog?category=Node.js&page=2&q=node+js", s.ListURL())
	require.Equal(t, "/blog?category=Node.js&q=node+js", s.PageURL(1))
	require.Equal(t, "/blog/x?category=Node.js&page=2&q=node+js", s.PostURL("x"))
}

func TestParseViewStateRoundTrip(t *testing.T) {
	t.Parallel()
	s := ViewState{SearchText: "react", SelectedCategory: "React", CurrentPage: 3}
	require.Equal(t, s, ParseViewState(s.Query()))

	padded := ParseViewState(url.Values{"q": {" mongodb"}})
	require.Equal(t, " mongodb", padded.SearchText)
	posts := shippedCatalog(t).Posts()
	require.Equal(t, ids(Filter(posts, " mongodb", AllCategories)), ids(Filter(posts, padded.SearchText, padded.SelectedCategory)))

	require.Equal(t, NewViewState(), ParseViewState(url.Values{"page": {"abc"}}))
	require.Equal(t, NewViewState(), ParseViewState(url.Values{"page": {"-1"}}))
}

func TestLoadCatalogErrors(t *testing.T) {
	t.Parallel()
	post := func(id, slug string) *fstest.MapFile {
		return &fstest.MapFile{Data: []byte("---\nid: " + id + "\ntitle: T\ndate: \"2025-01-01\"\nslug: " + slug + "\ncategory: C\n---\nbody\n")}
	}

	_, err := LoadCatalog(fstest.MapFS{"b/a.md": post("1", "a"), "b/b.md": post("1", "b")}, "b")
	require.ErrorContains(t, err, "duplicate post id")

	_, err = LoadCatalog(fstest.MapFS{"b/a.md": post("1", "a"), "b/b.md": post("2", "a")}, "b")
	require.ErrorContains(t, err, "duplicate post slug")

	_, err = LoadCatalog(fstest.MapFS{"b/a.md": {Data: []byte("---\nid: 1\ntitle: T\ndate: \"May 1\"\ncategory: C\n---\n")}}, "b")
	require.ErrorContains(t, err, "YYYY-MM-DD")

	_, err = LoadCatalog(fstest.MapFS{}, "missing")
	require.Error(t, err)
}

func TestLoadCatalogOrdersByIDAndDefaultsSlug(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"b/zeta.md":   {Data: []byte("---\nid: 1\ntitle: Z\ndate: \"2025-01-02\"\ncategory: C\n---\nzeta body\n")},
		"b/alpha.md":  {Data: []byte("---\nid: 2\ntitle: A\ndate: \"2025-01-01\"\ncategory: C\n---\nalpha body\n")},
		"b/notes.txt": {Data: []byte("ignored")},
	}
	c, err := LoadCatalog(fsys, "b")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, ids(c.Posts()))
	require.Equal(t, "zeta", c.Posts()[0].Slug)
	require.Equal(t, "zeta body", c.Posts()[0].Content)
	require.Equal(t, 2025, c.Posts()[1].Published().Year())
}

func TestParsePostTitleFromSlug(t *testing.T) {
	t.Parallel()

	p, err := ParsePost([]byte("---\nid: 3\ndate: \"2025-01-01\"\ncategory: C\n---\nbody\n"), "react-hooks-in-depth")
	require.NoError(t, err)
	require.Equal(t, "react-hooks-in-depth", p.Slug)
	require.Equal(t, "React Hooks In Depth", p.Title)
}
