// Package render turns blog post markdown into safe HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/verkaro/editml-go"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Options control the rendering pipeline.
type Options struct {
	// Unsafe skips HTML sanitising. Only for trusted content.
	Unsafe bool
	// LinkBase is the path that sibling post links (other-post.md) resolve to.
	LinkBase string
}

// Renderer converts markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
	unsafe    bool
}

// New builds a renderer for opts.
func New(opts Options) *Renderer {
	linkBase := opts.LinkBase
	if linkBase == "" {
		linkBase = "/blog"
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newPostLinkTransformer(linkBase), 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Renderer{
		md:        md,
		sanitizer: bluemonday.UGCPolicy(),
		unsafe:    opts.Unsafe,
	}
}

// Markdown renders source to HTML. EditML review marks are resolved to their
// clean view first, then the markdown is converted and sanitised.
func (r *Renderer) Markdown(source string) (template.HTML, error) {
	clean, err := cleanView(source)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(clean), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}

	if r.unsafe {
		return template.HTML(buf.String()), nil
	}
	return template.HTML(r.sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// cleanView strips editorial markup, keeping accepted text only.
func cleanView(source string) (string, error) {
	nodes, parseIssues := editml.Parse(source)
	if len(parseIssues) > 0 && parseIssues[0].Severity == editml.SeverityError {
		return "", fmt.Errorf("editml parsing error: %s", parseIssues[0].Message)
	}
	clean, transformIssues := editml.TransformCleanView(nodes)
	if len(transformIssues) > 0 && transformIssues[0].Severity == editml.SeverityError {
		return "", fmt.Errorf("editml transformation error: %s", transformIssues[0].Message)
	}
	return clean, nil
}
