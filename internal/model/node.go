package model

// Node represents a node in the hierarchical bookmark tree.
// A node with a URL is a leaf bookmark; a node without one is a folder.
type Node struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// IsFolder returns true if the node organizes children instead of
// carrying a URL.
func (n Node) IsFolder() bool {
	return n.URL == ""
}
