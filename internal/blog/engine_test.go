package blog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mernsite/web"
)

func shippedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(web.FS, "content/blog")
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())
	return c
}

func ids(posts []Post) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestDeriveCategories(t *testing.T) {
	t.Parallel()
	posts := []Post{
		{ID: 1, Category: "React"},
		{ID: 2, Category: "Node.js"},
		{ID: 3, Category: "React"},
		{ID: 4, Category: "MongoDB"},
	}
	require.Equal(t, []string{"All", "React", "Node.js", "MongoDB"}, DeriveCategories(posts))
	require.Equal(t, []string{"All"}, DeriveCategories(nil))
}

func TestDeriveCategoriesShippedCatalog(t *testing.T) {
	t.Parallel()
	c := shippedCatalog(t)
	require.Equal(t,
		[]string{"All", "MERN Stack", "React", "Node.js", "UI/UX", "JavaScript", "MongoDB"},
		DeriveCategories(c.Posts()))
}

func TestFilterIdentity(t *testing.T) {
	t.Parallel()
	c := shippedCatalog(t)
	require.Equal(t, c.Posts(), Filter(c.Posts(), "", AllCategories))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(c.Posts()))
}

func TestFilterSearch(t *testing.T) {
	t.Parallel()
	c := shippedCatalog(t)

	// Post 1's excerpt names MongoDB alongside React, Express and Node.js.
	require.Equal(t, []int{1, 6}, ids(Filter(c.Posts(), "mongodb", AllCategories)))
	require.Equal(t, []int{6}, ids(Filter(c.Posts(), "aggregation", AllCategories)))
	require.Equal(t, []int{6}, ids(Filter(c.Posts(), "MONGODB", "MongoDB")))
	require.Equal(t, []int{2, 5}, ids(Filter(c.Posts(), "2025", AllCategories)))
	require.Empty(t, Filter(c.Posts(), "kubernetes", AllCategories))
}

func TestFilterCategory(t *testing.T) {
	t.Parallel()
	c := shippedCatalog(t)
	require.Equal(t, []int{2}, ids(Filter(c.Posts(), "", "React")))
	require.Empty(t, Filter(c.Posts(), "", "react"), "category match is exact")
	require.Empty(t, Filter(c.Posts(), "", "Go"))
}

func TestPageCount(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0, PageCount(0, 3))
	require.Equal(t, 1, PageCount(1, 3))
	require.Equal(t, 1, PageCount(3, 3))
	require.Equal(t, 2, PageCount(4, 3))
	require.Equal(t, 2, PageCount(6, 3))
	require.Equal(t, 0, PageCount(6, 0))
}

func TestPaginate(t *testing.T) {
	t.Parallel()
	c := shippedCatalog(t)
	all := c.Posts()

	require.Equal(t, []int{1, 2, 3}, ids(Paginate(all, 1, 3)))
	require.Equal(t, []int{4, 5, 6}, ids(Paginate(all, 2, 3)))
	require.Empty(t, Paginate(all, 3, 3))
	require.Empty(t, Paginate(all, 0, 3))
	require.Equal(t, []int{5, 6}, ids(Paginate(all, 2, 4)))
}
