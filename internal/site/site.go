// Package site assembles the pages of the website from templates, page copy,
// the navigation menu and the blog catalog.
package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"mernsite/internal/blog"
	"mernsite/internal/config"
	"mernsite/internal/contact"
	"mernsite/internal/nav"
	"mernsite/internal/render"
)

const (
	menuFile = "nav.yaml"
	copyFile = "pages.yaml"
	postsDir = "blog"
)

// Site is an immutable snapshot of everything needed to render a page.
// It is safe for concurrent use.
type Site struct {
	Config  config.SiteConfig
	Menu    nav.Menu
	Catalog *blog.Catalog
	Copy    Copy
	Static  fs.FS

	templates map[string]*template.Template
	bodies    map[string]template.HTML
}

// Load reads and validates every source and renders all post bodies up front,
// so a broken post fails here and not on first request.
func Load(cfg config.SiteConfig, src Sources) (*Site, error) {
	menu, err := nav.LoadMenu(src.Data, menuFile)
	if err != nil {
		return nil, err
	}
	pageCopy, err := LoadCopy(src.Data, copyFile)
	if err != nil {
		return nil, err
	}
	catalog, err := blog.LoadCatalog(src.Content, postsDir)
	if err != nil {
		return nil, err
	}
	tmpl, err := LoadTemplates(src.Templates)
	if err != nil {
		return nil, err
	}

	renderer := render.New(render.Options{Unsafe: cfg.Unsafe, LinkBase: blog.BasePath})
	bodies := make(map[string]template.HTML, catalog.Len())
	for _, p := range catalog.Posts() {
		body, err := renderer.Markdown(p.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to render post %s: %w", p.Slug, err)
		}
		bodies[p.Slug] = body
	}

	return &Site{
		Config:    cfg,
		Menu:      menu,
		Catalog:   catalog,
		Copy:      pageCopy,
		Static:    src.Static,
		templates: tmpl,
		bodies:    bodies,
	}, nil
}

// PageData is the struct passed to templates.
type PageData struct {
	Template    string
	Site        config.SiteConfig
	Title       string
	Description string
	Route       string
	Nav         nav.View
	Footer      FooterCopy
	Year        int
	Page        any
}

// Canonical is the absolute URL of the page, or "" when no baseurl is set.
func (d PageData) Canonical() string {
	if d.Site.BaseURL == "" {
		return ""
	}
	return strings.TrimSuffix(d.Site.BaseURL, "/") + d.Route
}

type ServiceDetailData struct {
	Offering Offering
	Services ServicesCopy
}

type BlogListData struct {
	View blog.ListView
}

type BlogPostData struct {
	View    blog.DetailView
	Body    template.HTML
	BackURL string
}

type ContactData struct {
	Copy      ContactCopy
	Form      contact.Form
	Errors    contact.FieldErrors
	Reference string
}

type NotFoundData struct {
	Path string
}

func (s *Site) page(name, route, title string, page any) PageData {
	return PageData{
		Template:    name,
		Site:        s.Config,
		Title:       title,
		Description: s.Config.Description,
		Route:       route,
		Nav:         nav.Render(s.Menu, route),
		Footer:      s.Copy.Footer,
		Year:        time.Now().Year(),
		Page:        page,
	}
}

func (s *Site) HomePage() PageData {
	return s.page(PageHome, "/", "Home", s.Copy.Home)
}

func (s *Site) AboutPage() PageData {
	return s.page(PageAbout, "/about", s.Copy.About.Title, s.Copy.About)
}

func (s *Site) ServicesPage() PageData {
	return s.page(PageServices, "/service", s.Copy.Services.Title, s.Copy.Services)
}

// ServicePage reports false for an unknown slug.
func (s *Site) ServicePage(slug string) (PageData, bool) {
	o, ok := s.Copy.Services.Offering(slug)
	if !ok {
		return PageData{}, false
	}
	return s.page(PageServiceDetail, "/service/"+slug, o.Title, ServiceDetailData{Offering: o, Services: s.Copy.Services}), true
}

func (s *Site) ProjectsPage() PageData {
	return s.page(PageProjects, "/project", s.Copy.Projects.Title, s.Copy.Projects)
}

// BlogListPage renders the list for state. The returned state is state after
// normalisation; it differs from the input when the page was out of range.
func (s *Site) BlogListPage(state blog.ViewState) (PageData, blog.ViewState) {
	b := blog.NewBrowser(s.Catalog, s.Config.PageSize)
	b.Restore(state)
	v := b.List()
	return s.page(PageBlogList, blog.BasePath, "Blog", BlogListData{View: v}), v.State
}

// BlogPostPage renders the post slug, keeping state as the list to return to.
// It reports false, with the not-found page, when slug is not in the catalog.
func (s *Site) BlogPostPage(state blog.ViewState, slug string) (PageData, bool) {
	b := blog.NewBrowser(s.Catalog, s.Config.PageSize)
	b.Restore(state)
	b.SelectPost(slug)
	d := b.Detail()
	b.GoBack()
	back := b.State().ListURL()

	route := blog.BasePath + "/" + slug
	if !d.Found {
		return s.page(PageBlogMissing, route, "Post not found", BlogPostData{View: d, BackURL: back}), false
	}
	return s.page(PageBlogPost, route, d.Post.Title, BlogPostData{View: d, Body: s.bodies[slug], BackURL: back}), true
}

// ContactPage shows the form, its errors, or the thank-you note when
// reference is set.
func (s *Site) ContactPage(form contact.Form, errs contact.FieldErrors, reference string) PageData {
	return s.page(PageContact, "/contact", s.Copy.Contact.Title, ContactData{
		Copy:      s.Copy.Contact,
		Form:      form,
		Errors:    errs,
		Reference: reference,
	})
}

func (s *Site) NotFoundPage(route string) PageData {
	return s.page(PageNotFound, route, "Page not found", NotFoundData{Path: route})
}

// Render executes the page template named by data.Template.
func (s *Site) Render(w io.Writer, data PageData) error {
	tmpl, ok := s.templates[data.Template]
	if !ok {
		return fmt.Errorf("unknown page template %q", data.Template)
	}
	// "main" is the name of the template defined within our layout file.
	return tmpl.ExecuteTemplate(w, "main", data)
}
