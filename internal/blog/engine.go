package blog

import "strings"

// AllCategories is the pseudo-category that disables category filtering.
const AllCategories = "All"

// DefaultPageSize is the number of posts shown per list page.
const DefaultPageSize = 3

// DeriveCategories returns "All" followed by each distinct category in order
// of first appearance.
func DeriveCategories(posts []Post) []string {
	cats := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, p := range posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// Filter keeps posts in category (or any, for "All") whose title or excerpt
// contains search case-insensitively. Source order is preserved.
func Filter(posts []Post, search, category string) []Post {
	needle := strings.ToLower(search)
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if category != AllCategories && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Excerpt), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PageCount is ceil(n / size), zero when there is nothing to show.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-indexed page of posts. Pages outside the valid range
// yield an empty slice.
func Paginate(posts []Post, page, size int) []Post {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(posts) {
		return nil
	}
	end := start + size
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}
