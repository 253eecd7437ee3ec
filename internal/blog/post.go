package blog

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"github.com/agnivade/levenshtein"

	"mernsite/internal/util"
)

// DateLayout is the ISO date format used in post front matter.
const DateLayout = "2006-01-02"

// Post is a single blog entry. Content holds the raw markdown body.
type Post struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Date     string `yaml:"date"`
	Slug     string `yaml:"slug"`
	Category string `yaml:"category"`
	Content  string `yaml:"-"`
}

// Published parses Date. The zero time is returned for malformed dates,
// which LoadCatalog never admits.
func (p Post) Published() time.Time {
	t, _ := time.Parse(DateLayout, p.Date)
	return t
}

// ParsePost reads front matter and body from a markdown file. fallbackSlug
// is used when the front matter does not set one; a missing title is derived
// from the slug.
func ParsePost(data []byte, fallbackSlug string) (Post, error) {
	if !utf8.Valid(data) {
		return Post{}, fmt.Errorf("post is not valid UTF-8")
	}
	var p Post
	body, err := frontmatter.Parse(bytes.NewReader(data), &p)
	if err != nil {
		return Post{}, fmt.Errorf("failed to parse front matter: %w", err)
	}
	p.Content = strings.TrimSpace(string(body))
	if p.Slug == "" {
		p.Slug = fallbackSlug
	}
	if p.Title == "" && p.Slug != "" {
		p.Title = util.TitleFromSlug(p.Slug)
	}
	if err := p.validate(); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (p Post) validate() error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("post %q: id must be positive", p.Slug)
	case p.Slug == "":
		return fmt.Errorf("post %d: missing slug", p.ID)
	case p.Title == "":
		return fmt.Errorf("post %q: missing title", p.Slug)
	case p.Category == "":
		return fmt.Errorf("post %q: missing category", p.Slug)
	}
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return fmt.Errorf("post %q: date %q is not YYYY-MM-DD", p.Slug, p.Date)
	}
	return nil
}

// Catalog is the immutable, id-ordered set of posts.
type Catalog struct {
	posts  []Post
	bySlug map[string]int
}

// NewCatalog orders posts by id and rejects duplicate ids or slugs.
func NewCatalog(posts []Post) (*Catalog, error) {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{posts: sorted, bySlug: make(map[string]int, len(sorted))}
	ids := make(map[int]bool, len(sorted))
	for i, p := range sorted {
		if ids[p.ID] {
			return nil, fmt.Errorf("duplicate post id %d", p.ID)
		}
		if _, ok := c.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("duplicate post slug %q", p.Slug)
		}
		ids[p.ID] = true
		c.bySlug[p.Slug] = i
	}
	return c, nil
}

// LoadCatalog parses every .md file directly under dir in fsys.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read blog directory %s: %w", dir, err)
	}
	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read post %s: %w", name, err)
		}
		p, err := ParsePost(data, strings.TrimSuffix(entry.Name(), ".md"))
		if err != nil {
			return nil, fmt.Errorf("failed to load post %s: %w", name, err)
		}
		posts = append(posts, p)
	}
	return NewCatalog(posts)
}

// Posts returns the catalog in id order. Callers must not modify it.
func (c *Catalog) Posts() []Post {
	return c.posts
}

// Len returns the number of posts.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Lookup finds a post by slug.
func (c *Catalog) Lookup(slug string) (Post, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

// Suggest returns the post whose slug is closest to slug, provided the edit
// distance is at most half the length of slug.
func (c *Catalog) Suggest(slug string) (Post, bool) {
	if slug == "" {
		return Post{}, false
	}
	best, bestDist := -1, 0
	for i, p := range c.posts {
		d := levenshtein.ComputeDistance(slug, p.Slug)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > utf8.RuneCountInString(slug)/2 {
		return Post{}, false
	}
	return c.posts[best], true
}
