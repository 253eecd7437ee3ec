package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"time"
)

// Page template names. Each is parsed from <name>.html together with the
// shared layout, header and footer.
const (
	PageHome          = "home"
	PageAbout         = "about"
	PageServices      = "service"
	PageServiceDetail = "service_detail"
	PageProjects      = "project"
	PageBlogList      = "blog_list"
	PageBlogPost      = "blog_post"
	PageBlogMissing   = "blog_missing"
	PageContact       = "contact"
	PageNotFound      = "not_found"
)

var pageNames = []string{
	PageHome, PageAbout, PageServices, PageServiceDetail, PageProjects,
	PageBlogList, PageBlogPost, PageBlogMissing, PageContact, PageNotFound,
}

var layoutFiles = []string{"layout.html", "header.html", "footer.html"}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("January 2, 2006") },
}

// LoadTemplates parses the layout partials once and clones them for every
// page, so each page can define its own "content" block.
func LoadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}
	out := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(fsys, name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse page template %s: %w", name, err)
		}
		out[name] = clone
	}
	return out, nil
}
