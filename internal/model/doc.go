// Package model defines the core data structures used throughout
// the blog-index application.
//
// # Post
//
// Post represents a blog post with its front matter and the navigation
// links attached by the indexer:
//
//	post := &model.Post{Slug: "hello-world", Title: "Hello", Published: date}
//	fmt.Println(post.PrevSlug) // older neighbour, set after ordering
//	fmt.Println(post.NextSlug) // newer neighbour, set after ordering
//
// # Taxonomy
//
// Tag and Category are flat counted entries. CategoryNode is the nested
// form built from slash-delimited category paths:
//
//	Tech            (count 6)
//	└── Go          (count 4)
//	    └── Generics (count 1)
//
// # Anime
//
// Anime, AnimeStats and AnimeOverview hold the processed Bangumi collection.
//
// # URL Formatting
//
// URLFormatter turns category paths into site URLs. PathURLFormatter
// implements it with a template:
//
//	f := &model.PathURLFormatter{CategoryFormat: "/archive/category/{category}/"}
//	f.CategoryURL("Tech/Go") // "/archive/category/Tech/Go/"
package model
