package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/handiism/blog-index/internal/model"
)

// ErrNoFrontMatter is returned when a file does not start with a "---" block.
var ErrNoFrontMatter = errors.New("no front matter")

const fence = "---"

// Date is a front matter date that accepts the formats authors actually write.
type Date struct {
	time.Time
}

// UnmarshalYAML parses dates like "2024-01-02", "2024-01-02 15:04" or RFC 3339.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	// Try multiple formats
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"2006/01/02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", s)
}

// frontMatter is the YAML header of a post.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Published   Date     `yaml:"published"`
	Updated     *Date    `yaml:"updated"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	Category    any      `yaml:"category"`
	Draft       bool     `yaml:"draft"`
	Lang        string   `yaml:"lang"`
}

// toPost converts the header to a model.Post with the given slug and body.
func (fm *frontMatter) toPost(slug, body string) *model.Post {
	post := &model.Post{
		Slug:        slug,
		Title:       fm.Title,
		Published:   fm.Published.Time,
		Description: fm.Description,
		Image:       fm.Image,
		Tags:        fm.Tags,
		Category:    categoryString(fm.Category),
		Draft:       fm.Draft,
		Lang:        fm.Lang,
		Body:        body,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if fm.Updated != nil && !fm.Updated.IsZero() {
		t := fm.Updated.Time
		post.Updated = &t
	}
	return post
}

// categoryString normalizes the category field. Authors sometimes write a
// bare number (category: 2024); null or a missing field means no category.
func categoryString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	default:
		return strings.TrimSpace(fmt.Sprint(c))
	}
}

// ParsePost splits a markdown document into front matter and body and
// returns the resulting post.
//
// Returns ErrNoFrontMatter if the document does not open with a "---" line
// followed by a closing "---" line.
func ParsePost(slug string, data []byte) (*model.Post, error) {
	header, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	return fm.toPost(slug, body), nil
}

func splitFrontMatter(data []byte) (header []byte, body string, err error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(text, fence+"\n") {
		return nil, "", ErrNoFrontMatter
	}
	rest := text[len(fence)+1:]

	// The closing fence may be the very first line (empty header).
	var end, next int
	if strings.HasPrefix(rest, fence) {
		end, next = 0, len(fence)
	} else {
		idx := strings.Index(rest, "\n"+fence)
		if idx == -1 {
			return nil, "", ErrNoFrontMatter
		}
		end, next = idx, idx+1+len(fence)
	}

	tail := rest[next:]
	if tail != "" && !strings.HasPrefix(tail, "\n") {
		return nil, "", ErrNoFrontMatter
	}

	return []byte(rest[:end]), strings.TrimPrefix(tail, "\n"), nil
}
