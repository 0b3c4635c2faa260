package models

// FolderNode is one directory of the remote folder tree.
type FolderNode struct {
	Name     string       `json:"name"`
	Path     string       `json:"path"`
	Children []FolderNode `json:"children"`
}

// Walk visits n and all its descendants depth-first.
func (n FolderNode) Walk(fn func(FolderNode)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
