package blog

// ViewState is the transient state of the blog pane. A non-empty
// SelectedSlug puts the pane in detail mode; the list fields are kept so the
// list resumes where it was left.
type ViewState struct {
	SelectedSlug     string
	SearchText       string
	SelectedCategory string
	CurrentPage      int
}

// NewViewState returns the default list state.
func NewViewState() ViewState {
	return ViewState{SelectedCategory: AllCategories, CurrentPage: 1}
}

// IsDefault reports whether the list filters are untouched.
func (s ViewState) IsDefault() bool {
	return s.SearchText == "" && s.SelectedCategory == AllCategories
}

// Mode is the blog pane's display mode.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
)

// ListView is the data needed to draw one list page.
type ListView struct {
	State      ViewState
	Categories []string
	Posts      []Post
	Total      int
	PageCount  int
	Pages      []int
}

func (v ListView) HasPrev() bool { return v.State.CurrentPage > 1 }
func (v ListView) HasNext() bool { return v.State.CurrentPage < v.PageCount }
func (v ListView) PrevPage() int { return v.State.CurrentPage - 1 }
func (v ListView) NextPage() int { return v.State.CurrentPage + 1 }

// DetailView is the data needed to draw a single post, or the not-found
// message when Found is false.
type DetailView struct {
	State      ViewState
	Post       Post
	Found      bool
	Suggestion *Post
}

// Browser derives list and detail views from a catalog and a ViewState.
// Every mutation keeps CurrentPage within the page count.
type Browser struct {
	catalog  *Catalog
	pageSize int
	state    ViewState
}

// NewBrowser starts in the default list state. A non-positive pageSize falls
// back to DefaultPageSize.
func NewBrowser(catalog *Catalog, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{catalog: catalog, pageSize: pageSize, state: NewViewState()}
}

func (b *Browser) State() ViewState { return b.state }
func (b *Browser) PageSize() int    { return b.pageSize }

// Mode reports whether a post is selected.
func (b *Browser) Mode() Mode {
	if b.state.SelectedSlug != "" {
		return ModeDetail
	}
	return ModeList
}

// Restore replaces the state wholesale, as when decoding it from a URL.
func (b *Browser) Restore(s ViewState) {
	if s.SelectedCategory == "" {
		s.SelectedCategory = AllCategories
	}
	b.state = s
	b.normalize()
}

// SetSearch changes the search text and returns to the first page.
func (b *Browser) SetSearch(text string) {
	b.state.SearchText = text
	b.state.CurrentPage = 1
}

// SetCategory changes the category and returns to the first page. An empty
// category means "All".
func (b *Browser) SetCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	b.state.SelectedCategory = category
	b.state.CurrentPage = 1
}

// SetPage moves to page; a page beyond the current page count resets to 1.
func (b *Browser) SetPage(page int) {
	b.state.CurrentPage = page
	b.normalize()
}

// SelectPost switches to detail mode for slug. Unknown slugs still switch
// modes; Detail reports them as not found.
func (b *Browser) SelectPost(slug string) {
	b.state.SelectedSlug = slug
}

// GoBack returns to list mode with the previous filters and page.
func (b *Browser) GoBack() {
	b.state.SelectedSlug = ""
}

func (b *Browser) filtered() []Post {
	return Filter(b.catalog.Posts(), b.state.SearchText, b.state.SelectedCategory)
}

func (b *Browser) normalize() {
	if b.state.CurrentPage < 1 {
		b.state.CurrentPage = 1
		return
	}
	if b.state.CurrentPage > PageCount(len(b.filtered()), b.pageSize) {
		b.state.CurrentPage = 1
	}
}

// List derives the current list page.
func (b *Browser) List() ListView {
	posts := b.filtered()
	count := PageCount(len(posts), b.pageSize)
	pages := make([]int, count)
	for i := range pages {
		pages[i] = i + 1
	}
	return ListView{
		State:      b.state,
		Categories: DeriveCategories(b.catalog.Posts()),
		Posts:      Paginate(posts, b.state.CurrentPage, b.pageSize),
		Total:      len(posts),
		PageCount:  count,
		Pages:      pages,
	}
}

// Detail resolves the selected post.
func (b *Browser) Detail() DetailView {
	v := DetailView{State: b.state}
	if p, ok := b.catalog.Lookup(b.state.SelectedSlug); ok {
		v.Post, v.Found = p, true
		return v
	}
	if p, ok := b.catalog.Suggest(b.state.SelectedSlug); ok {
		v.Suggestion = &p
	}
	return v
}
