// Package netscape parses the Netscape bookmark HTML format produced by
// browser "Export bookmarks" features.
package netscape

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ideaminer"
)

// RootID is the identifier of the single tree root produced by Parse.
const RootID = "bookmarks"

// Roots is the allow-list covering everything in a parsed export.
var Roots = []string{RootID}

// Parse reads a Netscape bookmark HTML export and returns a bookmark tree
// with a single root folder named after the document heading (or
// "Bookmarks" when absent). Input without any bookmark list returns an
// EINVALID error.
func Parse(r io.Reader) (*ideaminer.Tree, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, ideaminer.Errorf(ideaminer.EINVALID, "failed to parse bookmarks HTML: %v", err)
	}

	top := doc.Find("dl").First()
	if top.Length() == 0 {
		return nil, ideaminer.Errorf(ideaminer.EINVALID, "no bookmark list found")
	}

	name := strings.TrimSpace(doc.Find("h1").First().Text())
	if name == "" {
		name = "Bookmarks"
	}

	root := &ideaminer.Node{
		Type:     ideaminer.NodeFolder,
		Name:     name,
		Children: parseList(top),
	}

	return &ideaminer.Tree{Roots: map[string]*ideaminer.Node{RootID: root}}, nil
}

// parseList converts one <dl> level into child nodes. Entries that are
// neither links nor folder headings are skipped.
func parseList(list *goquery.Selection) []*ideaminer.Node {
	var children []*ideaminer.Node
	list.ChildrenFiltered("dt").Each(func(_ int, dt *goquery.Selection) {
		if anchor := dt.ChildrenFiltered("a").First(); anchor.Length() > 0 {
			href, _ := anchor.Attr("href")
			added, _ := anchor.Attr("add_date")
			children = append(children, &ideaminer.Node{
				Type:      ideaminer.NodeURL,
				Name:      strings.TrimSpace(anchor.Text()),
				URL:       href,
				DateAdded: added,
			})
			return
		}
		if heading := dt.ChildrenFiltered("h3").First(); heading.Length() > 0 {
			folder := &ideaminer.Node{
				Type: ideaminer.NodeFolder,
				Name: strings.TrimSpace(heading.Text()),
			}
			// The export format leaves <dt> unclosed, so the html5
			// parsing algorithm nests the folder's <dl> inside the <dt>.
			if sub := dt.ChildrenFiltered("dl").First(); sub.Length() > 0 {
				folder.Children = parseList(sub)
			}
			children = append(children, folder)
		}
	})
	return children
}
