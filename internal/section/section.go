// Package section attributes a table to the heading that introduces it. VA
// pages render one h3 ahead of a block of several va-table components, so
// the lookup walks backward through preceding siblings and up the ancestor
// chain until a heading is found.
package section

import (
	"golang.org/x/net/html"

	"github.com/hyperifyio/varates/internal/dom"
)

// Meta identifies the nearest preceding heading of a table.
type Meta struct {
	ID   string
	Text string
}

// Locate finds the closest h3 preceding the given table in document order.
// The table lives inside a va-table-inner shadow root; the walk first climbs
// out to the host, then to its enclosing va-table in the light DOM, and from
// there scans previous siblings (taking the LAST h3 inside each, so the one
// nearest the table wins), climbing to the parent when a sibling level is
// exhausted. Returns nil when no heading precedes the table at any level.
func Locate(table *html.Node) *Meta {
	host := dom.Host(table)
	if host == nil {
		return nil
	}
	anchor := dom.Closest(host, "va-table")
	if anchor == nil {
		return nil
	}
	for node := anchor; node != nil; node = node.Parent {
		for p := prevElement(node); p != nil; p = prevElement(p) {
			if h := lastHeading(p); h != nil {
				return &Meta{ID: dom.Attr(h, "id"), Text: dom.Text(h)}
			}
			if dom.IsElement(p, "h3") {
				return &Meta{ID: dom.Attr(p, "id"), Text: dom.Text(p)}
			}
		}
	}
	return nil
}

func prevElement(n *html.Node) *html.Node {
	for p := n.PrevSibling; p != nil; p = p.PrevSibling {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// lastHeading returns the last h3 in document order within n's subtree,
// excluding n itself.
func lastHeading(n *html.Node) *html.Node {
	all := dom.FindAll(n, "h3")
	for i := len(all) - 1; i >= 0; i-- {
		if all[i] != n {
			return all[i]
		}
	}
	return nil
}
