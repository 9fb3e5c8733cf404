package content

import (
	"context"

	"github.com/handiism/blog-index/internal/model"
)

// Filter decides whether a post is visible to a query.
type Filter func(post *model.Post) bool

// All lets every post through.
func All(*model.Post) bool { return true }

// DraftPolicy returns the visibility filter for a build environment.
//
// Production builds hide posts marked as draft; every other environment
// shows everything.
func DraftPolicy(production bool) Filter {
	if !production {
		return All
	}
	return func(post *model.Post) bool {
		return !post.Draft
	}
}

// Source is a queryable collection of posts.
//
// Every call returns fresh copies, so callers may attach navigation fields
// to the returned posts without affecting later queries.
type Source interface {
	Posts(ctx context.Context, filter Filter) ([]*model.Post, error)
}

// Slice is an in-memory Source.
type Slice []*model.Post

// Posts returns copies of the posts that pass filter, in slice order.
func (s Slice) Posts(ctx context.Context, filter Filter) ([]*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = All
	}

	out := make([]*model.Post, 0, len(s))
	for _, p := range s {
		if filter(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
