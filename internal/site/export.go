package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"mernsite/internal/blog"
	"mernsite/internal/contact"
)

type ExportOptions struct {
	CleanDestination bool
}

// Export writes every page of the site as <route>/index.html under outputDir,
// plus 404.html and the static assets under static/. Blog list pages are only
// written for the unfiltered state. It returns the number of pages written.
func (s *Site) Export(outputDir string, opts ExportOptions) (int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, err
	}

	if opts.CleanDestination {
		fmt.Println("Cleaning destination directory...")
		entries, err := os.ReadDir(outputDir)
		if err != nil {
			return 0, err
		}
		for _, entry := range entries {
			if err := os.RemoveAll(filepath.Join(outputDir, entry.Name())); err != nil {
				return 0, err
			}
		}
	}

	pages := []PageData{s.HomePage(), s.AboutPage(), s.ServicesPage()}
	for _, o := range s.Copy.Services.Offerings {
		if data, ok := s.ServicePage(o.Slug); ok {
			pages = append(pages, data)
		}
	}
	pages = append(pages, s.ProjectsPage())

	first, state := s.BlogListPage(blog.NewViewState())
	pages = append(pages, first)
	count := blog.PageCount(s.Catalog.Len(), s.Config.PageSize)
	for n := 2; n <= count; n++ {
		state.CurrentPage = n
		data, _ := s.BlogListPage(state)
		data.Route = state.ListURL()
		pages = append(pages, data)
	}
	for _, p := range s.Catalog.Posts() {
		data, _ := s.BlogPostPage(blog.NewViewState(), p.Slug)
		pages = append(pages, data)
	}
	pages = append(pages, s.ContactPage(contact.Form{}, nil, ""))

	generated := 0
	for _, data := range pages {
		if err := s.renderFile(pagePath(outputDir, data.Route), data); err != nil {
			return 0, fmt.Errorf("failed to render page %s: %w", data.Route, err)
		}
		generated++
	}
	if err := s.renderFile(filepath.Join(outputDir, "404.html"), s.NotFoundPage("/404.html")); err != nil {
		return 0, fmt.Errorf("failed to render 404 page: %w", err)
	}
	generated++

	if err := copyStaticAssets(s.Static, filepath.Join(outputDir, StaticDir)); err != nil {
		return 0, err
	}
	return generated, nil
}

// pagePath maps a route to its index.html, e.g. /blog/page/2 to
// <out>/blog/page/2/index.html.
func pagePath(outputDir, route string) string {
	rel := strings.Trim(path.Clean(route), "/")
	return filepath.Join(outputDir, filepath.FromSlash(rel), "index.html")
}

func (s *Site) renderFile(outPath string, data PageData) error {
	var buf bytes.Buffer
	if err := s.Render(&buf, data); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0644)
}

// copyStaticAssets copies files from the static file system to dest.
func copyStaticAssets(static fs.FS, dest string) error {
	allowedExts := map[string]bool{
		".css": true, ".js": true, ".txt": true, ".svg": true, ".ico": true,
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	}
	return fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// Skip files with extensions that are not in our allowed list.
		if !allowedExts[path.Ext(p)] {
			return nil
		}
		data, err := fs.ReadFile(static, p)
		if err != nil {
			return err
		}
		out := filepath.Join(dest, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return err
		}
		return os.WriteFile(out, data, 0644)
	})
}
