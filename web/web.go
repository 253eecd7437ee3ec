// Package web bundles the default templates, static assets, data files and
// blog posts into the binary.
package web

import "embed"

//go:embed templates static data content
var FS embed.FS
