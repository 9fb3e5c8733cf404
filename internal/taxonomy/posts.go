package taxonomy

import (
	"sort"

	"github.com/handiism/blog-index/internal/model"
)

// SortPosts orders posts by publish date, newest first, in place.
//
// Posts with the same publish date keep their input order.
func SortPosts(posts []*model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published.After(posts[j].Published)
	})
}

// LinkPosts attaches navigation fields to posts that are already sorted
// newest first.
//
// For every post at index i:
//   - NextSlug/NextTitle point at posts[i-1], the newer neighbour
//   - PrevSlug/PrevTitle point at posts[i+1], the older neighbour
//
// The first post gets no Next* fields and the last post gets no Prev* fields.
func LinkPosts(posts []*model.Post) {
	for i := 1; i < len(posts); i++ {
		posts[i].NextSlug = posts[i-1].Slug
		posts[i].NextTitle = posts[i-1].Title
	}
	for i := 0; i < len(posts)-1; i++ {
		posts[i].PrevSlug = posts[i+1].Slug
		posts[i].PrevTitle = posts[i+1].Title
	}
}

// Summaries returns the listing projection of posts, in the same order.
func Summaries(posts []*model.Post) []model.PostSummary {
	out := make([]model.PostSummary, len(posts))
	for i, p := range posts {
		out[i] = p.Summary()
	}
	return out
}
