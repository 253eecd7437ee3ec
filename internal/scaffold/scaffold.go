// Package scaffold creates an editable site directory and new blog posts.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"mernsite/internal/blog"
	"mernsite/internal/config"
	"mernsite/internal/util"
	"mernsite/web"
)

// ArchetypeFile is the post template `new post` uses when present.
const ArchetypeFile = "archetypes/post.md"

// CreateNewSite writes site.yaml and copies the embedded templates, static
// assets, data and posts into dir so they can be edited. It refuses to write
// into a directory that already has a site.yaml.
func CreateNewSite(dir string) error {
	fmt.Println("Scaffolding new site in:", dir)
	cfgPath := filepath.Join(dir, config.DefaultFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	for _, sub := range []string{"templates", "static", "data", "content"} {
		if err := copyTree(web.FS, sub, filepath.Join(dir, sub)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", sub, err)
		}
	}

	cfg := config.Default()
	cfg.TemplateDir = "templates"
	cfg.StaticDir = "static"
	cfg.DataDir = "data"
	cfg.ContentDir = "content"
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(cfgPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", cfgPath, err)
	}

	archetype := filepath.Join(dir, filepath.FromSlash(ArchetypeFile))
	if err := os.MkdirAll(filepath.Dir(archetype), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(archetype, []byte(archetypePostContent), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", archetype, err)
	}

	fmt.Println("Site scaffolded. You can now:")
	fmt.Println("  cd", dir)
	fmt.Println("  mernsite serve --watch")
	return nil
}

// copyTree copies root of fsys into dest, preserving the layout.
func copyTree(fsys fs.FS, root, dest string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, filepath.FromSlash(p))
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}

// PostOptions locate the content and archetype for NewPost.
type PostOptions struct {
	// ContentDir holds blog/*.md.
	ContentDir string
	// Archetype overrides the built-in post template when the file exists.
	Archetype string
	Category  string
	Now       time.Time
}

type archetypeData struct {
	ID       int
	Title    string
	Slug     string
	Date     string
	Category string
	Author   string
}

// CreateNewPost writes content/blog/<slug>.md with the next free id and
// returns its path.
func CreateNewPost(title string, site config.SiteConfig, opts PostOptions) (string, error) {
	title = util.CleanTitle(title)
	slug := util.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title %q has no usable characters for a slug", title)
	}

	blogDir := filepath.Join(opts.ContentDir, "blog")
	if err := os.MkdirAll(blogDir, 0755); err != nil {
		return "", err
	}
	catalog, err := blog.LoadCatalog(os.DirFS(opts.ContentDir), "blog")
	if err != nil {
		return "", fmt.Errorf("could not read existing posts: %w", err)
	}
	if _, ok := catalog.Lookup(slug); ok {
		return "", fmt.Errorf("a post with slug %q already exists", slug)
	}
	nextID := 1
	for _, p := range catalog.Posts() {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	tmpl, err := loadArchetype(opts.Archetype)
	if err != nil {
		return "", err
	}
	category := opts.Category
	if category == "" {
		category = "General"
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	data := archetypeData{
		ID:       nextID,
		Title:    title,
		Slug:     slug,
		Date:     now.Format(blog.DateLayout),
		Category: category,
		Author:   site.Author,
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, data); err != nil {
		return "", fmt.Errorf("failed to execute archetype template: %w", err)
	}
	// The result must load like any other post.
	if _, err := blog.ParsePost(output.Bytes(), slug); err != nil {
		return "", fmt.Errorf("archetype produced an invalid post: %w", err)
	}

	path := filepath.Join(blogDir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, output.Bytes(), 0644); err != nil {
		return "", err
	}
	fmt.Println("Created:", path)
	return path, nil
}

func loadArchetype(path string) (*template.Template, error) {
	source := archetypePostContent
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			source = string(b)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("could not read archetype file %s: %w", path, err)
		}
	}
	tmpl, err := template.New("archetype").Funcs(template.FuncMap{"yaml": yamlScalar}).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse archetype file %s: %w", path, err)
	}
	return tmpl, nil
}

// yamlScalar encodes s as a single YAML scalar, quoting it when needed.
func yamlScalar(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

const archetypePostContent = `---
id: {{.ID}}
title: {{yaml .Title}}
excerpt: {{yaml (printf "A short summary of %s." .Title)}}
date: "{{.Date}}"
slug: {{yaml .Slug}}
category: {{yaml .Category}}
---

Write something meaningful here.
`
