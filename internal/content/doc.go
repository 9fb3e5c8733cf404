// Package content provides the post collection the indexer works on.
//
// A Source returns posts that pass a Filter. Two sources are provided:
//   - Dir reads markdown files with YAML front matter from disk
//   - Slice serves posts held in memory
//
// The draft visibility rule is an explicit filter rather than global state:
//
//	posts, err := src.Posts(ctx, content.DraftPolicy(cfg.Production))
//
// # Front Matter
//
// Posts start with a YAML block:
//
//	---
//	title: Hello
//	published: 2024-01-02
//	tags: [Go, Notes]
//	category: Tech/Go
//	draft: false
//	---
package content
