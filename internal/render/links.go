package render

import (
	"bytes"
	"path"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// postLinkTransformer rewrites relative links to sibling markdown files
// ("other-post.md") into blog routes ("/blog/other-post").
type postLinkTransformer struct {
	base string
}

func newPostLinkTransformer(base string) parser.ASTTransformer {
	return &postLinkTransformer{base: base}
}

func (t *postLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if dest, ok := t.rewrite(link.Destination); ok {
			link.Destination = dest
		}
		return ast.WalkContinue, nil
	})
}

func (t *postLinkTransformer) rewrite(dest []byte) ([]byte, bool) {
	if !bytes.HasSuffix(dest, []byte(".md")) {
		return nil, false
	}
	// Absolute and external links are left alone.
	if bytes.HasPrefix(dest, []byte("/")) || bytes.Contains(dest, []byte("://")) {
		return nil, false
	}
	slug := path.Base(string(bytes.TrimSuffix(dest, []byte(".md"))))
	return []byte(path.Join(t.base, slug)), true
}
