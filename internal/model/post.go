package model

import "time"

// Post represents a single blog post loaded from the content directory.
//
// Post contains everything the indexer needs:
//   - Slug and Title for links
//   - Published for chronological ordering
//   - Tags and Category for the taxonomy pages
//   - Draft for the production visibility policy
//
// The navigation fields (PrevSlug, PrevTitle, NextSlug, NextTitle) are empty
// when a post is loaded and are filled in by the post orderer. Posts are
// ordered newest first, so:
//   - Prev* points at the next item in the sorted list, which is the OLDER post
//   - Next* points at the previous item in the sorted list, which is the NEWER post
//
// The newest post therefore has no Next* and the oldest post has no Prev*.
type Post struct {
	// Slug is the URL identifier of the post, derived from its file path.
	Slug string `json:"slug"`

	// Title is the post title from the front matter.
	Title string `json:"title"`

	// Published is the publish date used for ordering.
	Published time.Time `json:"published"`

	// Updated is the optional last-modified date.
	Updated *time.Time `json:"updated,omitempty"`

	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`

	// Tags in the order they appear in the front matter. Duplicates are kept.
	Tags []string `json:"tags"`

	// Category is the slash-delimited category path, e.g. "Tech/Go".
	// Empty string means the post has no category.
	Category string `json:"category,omitempty"`

	// Draft posts are hidden in production builds.
	Draft bool `json:"draft,omitempty"`

	Lang string `json:"lang,omitempty"`

	// Body is the raw markdown after the front matter.
	Body string `json:"-"`

	PrevSlug  string `json:"prev_slug,omitempty"`
	PrevTitle string `json:"prev_title,omitempty"`
	NextSlug  string `json:"next_slug,omitempty"`
	NextTitle string `json:"next_title,omitempty"`
}

// Clone returns a copy of the post that shares no slices with the original.
func (p *Post) Clone() *Post {
	c := *p
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.Updated != nil {
		u := *p.Updated
		c.Updated = &u
	}
	return &c
}

// PostSummary is the lightweight listing projection of a Post.
//
// It carries the slug and the front matter data but neither the markdown
// body nor the navigation fields.
type PostSummary struct {
	Slug string `json:"slug"`
	Data Post   `json:"data"`
}

// Summary returns the listing projection of the post.
func (p *Post) Summary() PostSummary {
	data := *p.Clone()
	data.Body = ""
	data.PrevSlug, data.PrevTitle = "", ""
	data.NextSlug, data.NextTitle = "", ""
	return PostSummary{Slug: p.Slug, Data: data}
}
