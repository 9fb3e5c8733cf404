package taxonomy

import (
	"strings"

	"github.com/handiism/blog-index/internal/model"
)

// PathSeparator separates the levels of a category path.
const PathSeparator = "/"

// arena is the path-keyed node index of a single tree build.
// order remembers registration order so the tree comes out deterministic.
type arena struct {
	nodes map[string]*arenaEntry
	order []string
	roots []*model.CategoryNode
	urls  model.URLFormatter
}

type arenaEntry struct {
	node       *model.CategoryNode
	parentPath string
	hasParent  bool
}

// BuildCategoryTree turns the flat category list into a forest.
//
// Each category name is split on "/" and every segment is trimmed. For
// "Tech/Go/Generics" the nodes "Tech", "Tech/Go" and "Tech/Go/Generics" are
// created once each, no matter how many categories share the prefix. Only
// first-level segments become roots.
//
// The count of a category is assigned to the node of its full path. After
// the tree is linked, every node's count is replaced by the sum of its own
// count and the counts of all its descendants.
//
// Empty segments ("A//B", "/B" or an empty name) are kept as nodes with an
// empty name. They are never merged with a neighbouring segment.
//
// Roots and children appear in the order their paths are first seen.
func BuildCategoryTree(categories []model.Category, urls model.URLFormatter) []*model.CategoryNode {
	a := &arena{
		nodes: make(map[string]*arenaEntry),
		urls:  urls,
	}

	for _, category := range categories {
		a.add(category)
	}
	a.link()

	for _, root := range a.roots {
		aggregateCount(root)
	}

	if a.roots == nil {
		return []*model.CategoryNode{}
	}
	return a.roots
}

// add registers every prefix of the category path and assigns the
// category count to the node of the full path.
func (a *arena) add(category model.Category) {
	parts := strings.Split(category.Name, PathSeparator)

	var currentPath string
	for i, part := range parts {
		part = strings.TrimSpace(part)

		parentPath := currentPath
		if i == 0 {
			currentPath = part
		} else {
			currentPath = parentPath + PathSeparator + part
		}

		entry, ok := a.nodes[currentPath]
		if !ok {
			entry = &arenaEntry{
				node: &model.CategoryNode{
					Name:     part,
					URL:      categoryURL(a.urls, currentPath),
					FullPath: currentPath,
					Children: []*model.CategoryNode{},
				},
				parentPath: parentPath,
				hasParent:  i > 0,
			}
			a.nodes[currentPath] = entry
			a.order = append(a.order, currentPath)

			if i == 0 {
				a.roots = append(a.roots, entry.node)
			}
		}

		if i == len(parts)-1 {
			entry.node.Count = category.Count
		}
	}
}

// link attaches every non-root node to its parent exactly once.
func (a *arena) link() {
	for _, path := range a.order {
		entry := a.nodes[path]
		if !entry.hasParent {
			continue
		}

		parent, ok := a.nodes[entry.parentPath]
		if !ok || hasChild(parent.node, path) {
			continue
		}
		parent.node.Children = append(parent.node.Children, entry.node)
	}
}

func hasChild(node *model.CategoryNode, fullPath string) bool {
	for _, child := range node.Children {
		if child.FullPath == fullPath {
			return true
		}
	}
	return false
}

// aggregateCount replaces the count of node and of all its descendants
// with the subtree total and returns the total of node.
func aggregateCount(node *model.CategoryNode) int {
	total := node.Count
	for _, child := range node.Children {
		total += aggregateCount(child)
	}
	node.Count = total
	return total
}
