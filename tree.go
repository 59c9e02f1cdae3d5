package ideaminer

// Node kinds recognized by Flatten. Nodes carrying any other kind tag are
// skipped silently.
const (
	NodeURL    = "url"
	NodeFolder = "folder"
)

// Node is one entry in a bookmark tree: either a folder with children or a
// URL leaf.
type Node struct {
	Type      string
	Name      string
	URL       string
	DateAdded string
	Children  []*Node
}

// Tree is a parsed bookmark tree with named roots (e.g. Chrome's
// bookmark_bar, other and synced).
type Tree struct {
	Roots map[string]*Node
}

// Flatten walks the tree and returns every URL leaf reachable from the
// allow-listed roots as a Bookmark record, in pre-order. Roots are visited
// in allow-list order so the result is deterministic; roots absent from the
// tree, or present but not allow-listed (like a trash root), contribute
// nothing. Folder paths are slash-joined ancestor folder names with the root
// identifier as the first segment.
//
// Nesting depth is unbounded: Go stacks grow on demand, so recursion is safe
// for any realistic bookmark tree.
func Flatten(tree *Tree, allowedRoots []string) []*Bookmark {
	if tree == nil {
		return nil
	}
	var bookmarks []*Bookmark
	for _, rootID := range allowedRoots {
		root := tree.Roots[rootID]
		if root == nil {
			continue
		}
		bookmarks = flattenNode(root, rootID, bookmarks)
	}
	return bookmarks
}

// flattenNode appends the records of node and its descendants to out in
// pre-order. Leaves with a missing URL are still emitted: filtering empty
// URLs is the caller's concern.
func flattenNode(node *Node, path string, out []*Bookmark) []*Bookmark {
	switch node.Type {
	case NodeURL:
		out = append(out, NewBookmark(node.Name, node.URL, node.DateAdded, path))
	case NodeFolder:
		name := node.Name
		if name == "" {
			name = "Unnamed"
		}
		childPath := name
		if path != "" {
			childPath = path + "/" + name
		}
		for _, child := range node.Children {
			if child == nil {
				continue
			}
			out = flattenNode(child, childPath, out)
		}
	}
	return out
}
