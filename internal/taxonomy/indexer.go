package taxonomy

import (
	"context"

	"golang.org/x/text/language"

	"github.com/handiism/blog-index/internal/content"
	"github.com/handiism/blog-index/internal/model"
)

// Options configures an Indexer.
type Options struct {
	// Filter selects the visible posts, e.g. content.DraftPolicy(production).
	// Nil means every post is visible.
	Filter content.Filter

	// URLs resolves category URLs. Nil leaves URLs empty.
	URLs model.URLFormatter

	// Uncategorized is the label for posts without a category.
	Uncategorized string

	// Language selects the collation rules for sorting tags and categories.
	Language language.Tag
}

// Indexer answers the site's taxonomy queries against a content source.
//
// Each query reloads the posts through the configured filter and computes
// its result from scratch; nothing is cached between calls.
//
// Example usage:
//
//	ix := taxonomy.NewIndexer(content.NewDir("posts", nil), taxonomy.Options{
//	    Filter:        content.DraftPolicy(true),
//	    URLs:          &model.PathURLFormatter{},
//	    Uncategorized: "Uncategorized",
//	})
//
//	posts, err := ix.SortedPosts(ctx)
//	tags, err := ix.TagList(ctx)
//	tree, err := ix.NestedCategoryList(ctx)
type Indexer struct {
	source content.Source
	opts   Options
}

// NewIndexer creates an Indexer over source.
func NewIndexer(source content.Source, opts Options) *Indexer {
	if opts.Filter == nil {
		opts.Filter = content.All
	}
	return &Indexer{source: source, opts: opts}
}

// SortedPosts returns the visible posts newest first with navigation links attached.
func (ix *Indexer) SortedPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := ix.rawSortedPosts(ctx)
	if err != nil {
		return nil, err
	}
	LinkPosts(posts)
	return posts, nil
}

// SortedPostList returns the visible posts newest first as lightweight
// summaries without body or navigation links.
func (ix *Indexer) SortedPostList(ctx context.Context) ([]model.PostSummary, error) {
	posts, err := ix.rawSortedPosts(ctx)
	if err != nil {
		return nil, err
	}
	return Summaries(posts), nil
}

// TagList returns every tag used by a visible post with its usage count.
func (ix *Indexer) TagList(ctx context.Context) ([]model.Tag, error) {
	posts, err := ix.source.Posts(ctx, ix.opts.Filter)
	if err != nil {
		return nil, err
	}
	return CountTags(posts, ix.collator()), nil
}

// CategoryList returns the flat category list of the visible posts.
func (ix *Indexer) CategoryList(ctx context.Context) ([]model.Category, error) {
	posts, err := ix.source.Posts(ctx, ix.opts.Filter)
	if err != nil {
		return nil, err
	}
	return CountCategories(posts, ix.opts.Uncategorized, ix.collator(), ix.opts.URLs), nil
}

// NestedCategoryList returns the category forest of the visible posts.
func (ix *Indexer) NestedCategoryList(ctx context.Context) ([]*model.CategoryNode, error) {
	categories, err := ix.CategoryList(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCategoryTree(categories, ix.opts.URLs), nil
}

func (ix *Indexer) rawSortedPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := ix.source.Posts(ctx, ix.opts.Filter)
	if err != nil {
		return nil, err
	}
	SortPosts(posts)
	return posts, nil
}

// collator returns a fresh collator; collators are not safe to share.
func (ix *Indexer) collator() *Collator {
	return NewCollator(ix.opts.Language)
}
