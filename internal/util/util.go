package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\- ]+`)
	dashRuns     = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL path segment, e.g. "Hello, World!" into
// "hello-world".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CleanTitle trims s and collapses runs of whitespace, leaving casing alone.
func CleanTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleFromSlug turns a slug back into a readable title:
// "mern-stack-guide" becomes "Mern Stack Guide".
func TitleFromSlug(slug string) string {
	return cases.Title(language.English, cases.NoLower).String(CleanTitle(strings.ReplaceAll(slug, "-", " ")))
}
