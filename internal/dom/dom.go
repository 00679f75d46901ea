// Package dom resolves text and structure over a rendered-page snapshot in
// which shadow roots appear as declarative <template shadowrootmode="...">
// children of their host element. The snapshot is a plain x/net/html tree, so
// ordinary queries see through shadow boundaries; slot assignment is resolved
// here rather than by the parser.
package dom

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && strings.EqualFold(n.Data, tag)
}

// ShadowRoot returns the declarative shadow root of a host element: its
// direct <template> child carrying a shadowrootmode attribute. Nil when the
// element hosts no shadow tree.
func ShadowRoot(host *html.Node) *html.Node {
	if host == nil {
		return nil
	}
	for c := host.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c, "template") && Attr(c, "shadowrootmode") != "" {
			return c
		}
	}
	return nil
}

// Host returns the shadow host enclosing n: the parent of the nearest
// ancestor declarative shadow root. Nil when n is not inside a shadow tree.
func Host(n *html.Node) *html.Node {
	for p := n; p != nil; p = p.Parent {
		if IsElement(p, "template") && Attr(p, "shadowrootmode") != "" {
			return p.Parent
		}
	}
	return nil
}

// Closest walks up the parent chain from n (inclusive) and returns the first
// element with the given tag, or nil.
func Closest(n *html.Node, tag string) *html.Node {
	for p := n; p != nil; p = p.Parent {
		if IsElement(p, tag) {
			return p
		}
	}
	return nil
}

// FindFirst returns the first element with the given tag in a depth-first
// walk of n's subtree, or nil.
func FindFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	if n != nil {
		dfs(n)
	}
	return res
}

// FindAll returns every element with the given tag in document order within
// n's subtree, including elements inside declarative shadow roots.
func FindAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			out = append(out, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	if n != nil {
		dfs(n)
	}
	return out
}

// Text resolves the fully distributed text of a node as a single
// whitespace-normalized string. A <slot> contributes the text of its
// assigned light-DOM nodes instead of its own subtree; a node containing a
// slot prefers the slot's assigned content over direct children, matching
// composed-tree rendering. Returns "" for a nil node.
func Text(n *html.Node) string {
	return Normalize(distributedText(n))
}

func distributedText(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	if IsElement(n, "slot") {
		assigned := assignedNodes(n)
		if len(assigned) > 0 {
			return joinText(assigned)
		}
		// Unassigned slot renders its fallback content.
		return childText(n)
	}
	if slot := FindFirst(n, "slot"); slot != nil && slot != n {
		if assigned := assignedNodes(slot); len(assigned) > 0 {
			return joinText(assigned)
		}
	}
	return childText(n)
}

func childText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(distributedText(c))
		b.WriteString(" ")
	}
	return b.String()
}

func joinText(nodes []*html.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, a := range nodes {
		parts = append(parts, distributedText(a))
	}
	return strings.Join(parts, " ")
}

// assignedNodes resolves the light-DOM nodes projected into a slot: the
// shadow host's direct children whose slot attribute matches the slot's
// name, or for an unnamed slot, the children carrying no slot attribute.
func assignedNodes(slot *html.Node) []*html.Node {
	host := Host(slot)
	if host == nil {
		return nil
	}
	name := Attr(slot, "name")
	var out []*html.Node
	for c := host.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c, "template") && Attr(c, "shadowrootmode") != "" {
			continue
		}
		switch c.Type {
		case html.ElementNode:
			if Attr(c, "slot") == name {
				out = append(out, c)
			}
		case html.TextNode:
			if name == "" && strings.TrimSpace(c.Data) != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

// nbspFold maps non-breaking and other exotic spaces onto plain spaces so a
// single collapse pass suffices.
var nbspFold = runes.Map(func(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
})

// Normalize collapses consecutive whitespace (including NBSP) to one space
// and trims the ends.
func Normalize(s string) string {
	folded, _, _ := transform.String(nbspFold, s)
	return strings.Join(strings.Fields(folded), " ")
}
