package taxonomy

import (
	"strings"

	"github.com/handiism/blog-index/internal/model"
)

// CountTags counts how often each tag is used across posts.
//
// Every occurrence counts, so a tag listed twice on one post counts twice.
// Tag names are case-sensitive; "Go" and "go" are different tags that sort
// next to each other in first-seen order.
func CountTags(posts []*model.Post, collator *Collator) []model.Tag {
	counts := make(map[string]int)
	var names []string

	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := counts[tag]; !ok {
				names = append(names, tag)
			}
			counts[tag]++
		}
	}

	collator.SortStrings(names)

	tags := make([]model.Tag, len(names))
	for i, name := range names {
		tags[i] = model.Tag{Name: name, Count: counts[name]}
	}
	return tags
}

// CountCategories builds the flat category list.
//
// Posts without a category are counted under the uncategorized label.
// Category names are trimmed of surrounding whitespace. The result is sorted
// like tags and every entry gets its URL from urls (nil leaves URLs empty).
func CountCategories(posts []*model.Post, uncategorized string, collator *Collator, urls model.URLFormatter) []model.Category {
	counts := make(map[string]int)
	var names []string

	for _, post := range posts {
		name := strings.TrimSpace(post.Category)
		if name == "" {
			name = uncategorized
		}
		if _, ok := counts[name]; !ok {
			names = append(names, name)
		}
		counts[name]++
	}

	collator.SortStrings(names)

	categories := make([]model.Category, len(names))
	for i, name := range names {
		categories[i] = model.Category{
			Name:  name,
			Count: counts[name],
			URL:   categoryURL(urls, name),
		}
	}
	return categories
}

func categoryURL(urls model.URLFormatter, path string) string {
	if urls == nil {
		return ""
	}
	return urls.CategoryURL(path)
}
