// Package taxonomy derives the navigable structure of the blog from its posts.
//
// The package provides:
//   - Post ordering (newest first) with prev/next navigation links
//   - Tag usage counts
//   - The flat category list
//   - The nested category tree built from "/" separated category paths
//
// # Navigation Links
//
// After SortPosts the list runs from newest to oldest. LinkPosts then sets,
// for each post, Prev* to the following (older) post and Next* to the
// preceding (newer) post:
//
//	index:     0        1        2
//	post:      newest   middle   oldest
//	Prev*:     middle   oldest   -
//	Next*:     -        newest   middle
//
// # Category Tree
//
// Given the flat list
//
//	A (2), A/B (3), A/B/C (1), D (5)
//
// BuildCategoryTree returns
//
//	A (6)
//	└── B (4)
//	    └── C (1)
//	D (5)
//
// Counts on inner nodes are the totals of their whole subtree.
package taxonomy
