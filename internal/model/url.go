package model

import (
	"net/url"
	"strings"
)

// URLFormatter resolves category paths to site-relative URLs.
//
// The indexer only ever hands over the category path; how it becomes a URL
// is up to the formatter.
type URLFormatter interface {
	CategoryURL(path string) string
}

// DefaultCategoryURLFormat is the category page template used by the site.
const DefaultCategoryURLFormat = "/archive/category/{category}/"

// PathURLFormatter fills a URL template with the category path.
//
// Supported placeholders:
//   - {category} - the path-escaped category path, segment by segment
//
// Example:
//
//	f := &PathURLFormatter{Base: "/blog", CategoryFormat: "/archive/category/{category}/"}
//	f.CategoryURL("Tech/Go") // "/blog/archive/category/Tech/Go/"
type PathURLFormatter struct {
	// Base is prepended to every URL. Empty or "/" means the site root.
	Base string

	// CategoryFormat is the template for category pages.
	// Defaults to DefaultCategoryURLFormat when empty.
	CategoryFormat string

	// Uncategorized is the label used for posts without a category.
	// It is rendered as the literal "uncategorized" in URLs.
	Uncategorized string
}

// CategoryURL returns the URL of the category page for path.
func (f *PathURLFormatter) CategoryURL(path string) string {
	format := f.CategoryFormat
	if format == "" {
		format = DefaultCategoryURLFormat
	}

	var value string
	if f.Uncategorized != "" && path == f.Uncategorized {
		value = "uncategorized"
	} else {
		value = escapeSegments(strings.TrimSpace(path))
	}

	return joinBase(f.Base, strings.ReplaceAll(format, "{category}", value))
}

// escapeSegments path-escapes each "/" separated segment but keeps the separators.
func escapeSegments(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(strings.TrimSpace(part))
	}
	return strings.Join(parts, "/")
}

func joinBase(base, path string) string {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
