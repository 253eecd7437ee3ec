package blog

import (
	"net/url"
	"strconv"
)

// BasePath is where the blog is mounted.
const BasePath = "/blog"

// Query parameter names.
const (
	ParamSearch   = "q"
	ParamCategory = "category"
	ParamPage     = "page"
)

// ParseViewState reads list state from query parameters. Missing or malformed
// values fall back to the defaults. Search text is kept as typed, matching
// Filter.
func ParseViewState(q url.Values) ViewState {
	s := NewViewState()
	s.SearchText = q.Get(ParamSearch)
	if c := q.Get(ParamCategory); c != "" {
		s.SelectedCategory = c
	}
	if n, err := strconv.Atoi(q.Get(ParamPage)); err == nil && n > 0 {
		s.CurrentPage = n
	}
	return s
}

// Query encodes the non-default list fields.
func (s ViewState) Query() url.Values {
	q := url.Values{}
	if s.SearchText != "" {
		q.Set(ParamSearch, s.SearchText)
	}
	if s.SelectedCategory != "" && s.SelectedCategory != AllCategories {
		q.Set(ParamCategory, s.SelectedCategory)
	}
	if s.CurrentPage > 1 {
		q.Set(ParamPage, strconv.Itoa(s.CurrentPage))
	}
	return q
}

// ListURL links to the list view for s. Unfiltered pages use path-style URLs
// so they also work in a static export.
func (s ViewState) ListURL() string {
	if s.IsDefault() {
		if s.CurrentPage > 1 {
			return BasePath + "/page/" + strconv.Itoa(s.CurrentPage)
		}
		return BasePath
	}
	return withQuery(BasePath, s.Query())
}

// PageURL links to page n of the current filters.
func (s ViewState) PageURL(n int) string {
	s.CurrentPage = n
	return s.ListURL()
}

// PostURL links to a post, carrying the list state so "back" restores it.
func (s ViewState) PostURL(slug string) string {
	return withQuery(BasePath+"/"+url.PathEscape(slug), s.Query())
}

func withQuery(p string, q url.Values) string {
	if len(q) == 0 {
		return p
	}
	return p + "?" + q.Encode()
}
