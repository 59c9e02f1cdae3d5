// Package chrome parses Chrome and Chromium Bookmarks files.
package chrome

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fwojciec/ideaminer"
)

// DefaultRoots are the Chrome bookmark roots worth mining, in file order.
// Chrome's trash-equivalent roots are deliberately absent.
var DefaultRoots = []string{"bookmark_bar", "other", "synced"}

// node mirrors one entry of Chrome's Bookmarks JSON.
type node struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	DateAdded string  `json:"date_added"`
	Children  []*node `json:"children"`
}

// bookmarksFile mirrors the top level of Chrome's Bookmarks JSON.
type bookmarksFile struct {
	Roots map[string]*node `json:"roots"`
}

// Parse reads a Chrome Bookmarks JSON document and returns the bookmark
// tree. Structurally invalid input (not a JSON object, or no roots mapping)
// returns an EINVALID error; anything malformed below the roots degrades
// silently during flattening instead.
func Parse(r io.Reader) (*ideaminer.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file bookmarksFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, ideaminer.Errorf(ideaminer.EINVALID, "failed to parse bookmarks file: %v", err)
	}
	if file.Roots == nil {
		return nil, ideaminer.Errorf(ideaminer.EINVALID, "bookmarks file has no roots")
	}

	roots := make(map[string]*ideaminer.Node, len(file.Roots))
	for id, n := range file.Roots {
		if n == nil {
			continue
		}
		roots[id] = convert(n)
	}
	return &ideaminer.Tree{Roots: roots}, nil
}

// ParseFile reads and parses a Chrome Bookmarks file from disk.
func ParseFile(path string) (*ideaminer.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func convert(n *node) *ideaminer.Node {
	out := &ideaminer.Node{
		Type:      n.Type,
		Name:      n.Name,
		URL:       n.URL,
		DateAdded: n.DateAdded,
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		out.Children = append(out.Children, convert(child))
	}
	return out
}
