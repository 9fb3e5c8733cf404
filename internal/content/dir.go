package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/handiism/blog-index/internal/model"
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^\p{L}\p{N}_\-]`)
)

// Dir is a Source that reads markdown posts from a directory tree.
//
// Every .md and .mdx file below Root is a post. Files are read on every
// query, so edits are picked up without restarting.
//
// Example usage:
//
//	src := content.NewDir("src/content/posts", nil)
//	posts, err := src.Posts(ctx, content.DraftPolicy(true))
type Dir struct {
	Root   string
	logger *slog.Logger
}

// NewDir creates a Dir source. If logger is nil, uses slog.Default().
func NewDir(root string, logger *slog.Logger) *Dir {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dir{Root: root, logger: logger}
}

// Posts loads every post below Root that passes filter, in file path order.
//
// Files without front matter are skipped with a warning. A file whose front
// matter cannot be parsed fails the whole query.
func (d *Dir) Posts(ctx context.Context, filter Filter) ([]*model.Post, error) {
	if filter == nil {
		filter = All
	}

	var posts []*model.Post
	err := filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !isMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(d.Root, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		post, err := ParsePost(SlugFromPath(rel), data)
		if errors.Is(err, ErrNoFrontMatter) {
			d.logger.Warn("skipping file without front matter", slog.String("path", path))
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if filter(post) {
			posts = append(posts, post)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load posts from %s: %w", d.Root, err)
	}

	d.logger.Debug("loaded posts", slog.String("root", d.Root), slog.Int("count", len(posts)))
	return posts, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return true
	}
	return false
}

// SlugFromPath derives a post slug from its path relative to the content root.
//
// The extension and a trailing "index" file name are dropped, and each
// segment is lower-cased with whitespace turned into "-" and punctuation
// removed:
//
//	SlugFromPath("Hello World.md")        // "hello-world"
//	SlugFromPath("guide/index.md")        // "guide"
//	SlugFromPath("2024/My Trip (Part 1).md") // "2024/my-trip-part-1"
func SlugFromPath(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))

	parts := strings.Split(rel, "/")
	if len(parts) > 1 && strings.EqualFold(parts[len(parts)-1], "index") {
		parts = parts[:len(parts)-1]
	}

	for i, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		part = slugSpaces.ReplaceAllString(part, "-")
		parts[i] = slugInvalid.ReplaceAllString(part, "")
	}
	return strings.Join(parts, "/")
}
