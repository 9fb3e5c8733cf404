package model

// Tag is a tag name together with the number of times it is used.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Category is one entry of the flat category list.
//
// Name is the full category path as written in the front matter, e.g.
// "Tech/Go/Concurrency". Count is the number of posts filed directly under
// that path (not including sub-categories).
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	URL   string `json:"url"`
}

// CategoryNode is a node of the nested category tree.
//
// Name holds only the last path segment ("Concurrency") while FullPath holds
// the whole "/"-joined chain ("Tech/Go/Concurrency"). Count is the aggregate
// of the posts filed under this node and under every descendant.
type CategoryNode struct {
	Name     string          `json:"name"`
	Count    int             `json:"count"`
	URL      string          `json:"url"`
	FullPath string          `json:"full_path"`
	Children []*CategoryNode `json:"children"`
}

// Walk calls fn for the node and all of its descendants in depth-first
// pre-order. depth is 0 for the node itself.
func (n *CategoryNode) Walk(fn func(node *CategoryNode, depth int)) {
	n.walk(fn, 0)
}

func (n *CategoryNode) walk(fn func(node *CategoryNode, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}
