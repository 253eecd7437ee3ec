package site

import (
	"io/fs"
	"os"

	"mernsite/internal/config"
	"mernsite/web"
)

// Sources are the file systems a site is assembled from. Templates, Static
// and Data are rooted at their own directory; Content holds blog/*.md.
type Sources struct {
	Templates fs.FS
	Static    fs.FS
	Data      fs.FS
	Content   fs.FS
}

// Embedded directory names inside web.FS. The same names are used on disk by
// `init`.
const (
	TemplatesDir = "templates"
	StaticDir    = "static"
	DataDir      = "data"
	ContentDir   = "content"
)

// EmbeddedSources returns the copies compiled into the binary.
func EmbeddedSources() Sources {
	return Sources{
		Templates: mustSub(TemplatesDir),
		Static:    mustSub(StaticDir),
		Data:      mustSub(DataDir),
		Content:   mustSub(ContentDir),
	}
}

// SourcesFor reads each directory configured in cfg from disk and falls back
// to the embedded copy for the rest.
func SourcesFor(cfg config.SiteConfig) Sources {
	src := EmbeddedSources()
	if cfg.TemplateDir != "" {
		src.Templates = os.DirFS(cfg.TemplateDir)
	}
	if cfg.StaticDir != "" {
		src.Static = os.DirFS(cfg.StaticDir)
	}
	if cfg.DataDir != "" {
		src.Data = os.DirFS(cfg.DataDir)
	}
	if cfg.ContentDir != "" {
		src.Content = os.DirFS(cfg.ContentDir)
	}
	return src
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(web.FS, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
