// Package xbel parses XBEL (XML Bookmark Exchange Language) bookmark files.
package xbel

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/ideaminer"
)

// RootID is the identifier of the single tree root produced by Parse.
const RootID = "xbel"

// Roots is the allow-list covering everything in a parsed document.
var Roots = []string{RootID}

// Parse reads an XBEL document and returns a bookmark tree with a single
// "xbel" root. Documents that are not well-formed XML or whose root element
// is not <xbel> return an EINVALID error. Unrecognized child elements
// (aliases, separators) are skipped.
func Parse(r io.Reader) (*ideaminer.Tree, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, ideaminer.Errorf(ideaminer.EINVALID, "failed to parse XBEL: %v", err)
	}

	root := doc.SelectElement("xbel")
	if root == nil {
		return nil, ideaminer.Errorf(ideaminer.EINVALID, "not an XBEL document")
	}

	name := title(root)
	if name == "" {
		name = "XBEL Bookmarks"
	}

	node := &ideaminer.Node{
		Type:     ideaminer.NodeFolder,
		Name:     name,
		Children: parseChildren(root),
	}

	return &ideaminer.Tree{Roots: map[string]*ideaminer.Node{RootID: node}}, nil
}

func parseChildren(el *etree.Element) []*ideaminer.Node {
	var children []*ideaminer.Node
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "bookmark":
			children = append(children, &ideaminer.Node{
				Type:      ideaminer.NodeURL,
				Name:      title(child),
				URL:       child.SelectAttrValue("href", ""),
				DateAdded: child.SelectAttrValue("added", ""),
			})
		case "folder":
			children = append(children, &ideaminer.Node{
				Type:     ideaminer.NodeFolder,
				Name:     title(child),
				Children: parseChildren(child),
			})
		}
	}
	return children
}

// title returns the trimmed <title> child text of an element.
func title(el *etree.Element) string {
	if t := el.SelectElement("title"); t != nil {
		return strings.TrimSpace(t.Text())
	}
	return ""
}
