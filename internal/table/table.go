// Package table locates rate tables inside hydrated web components and
// classifies each as a Basic compensation table or an Added-amounts table.
package table

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hyperifyio/varates/internal/dataset"
	"github.com/hyperifyio/varates/internal/dom"
)

// HostSelector matches the hydrated custom elements whose shadow roots carry
// the rate tables.
const HostSelector = "va-table-inner.hydrated"

// Handle is a read-only view of one rendered table: its resolved caption and
// cell texts plus the underlying node for section lookup.
type Handle struct {
	Node    *html.Node
	Caption string
	Headers []string
	Body    [][]string
}

// Collect finds every hydrated table host in the document, pierces its
// shadow root, and extracts caption, header, and body cell texts. Hosts
// without a shadow root or inner table are skipped.
func Collect(doc *html.Node) []Handle {
	var out []Handle
	goquery.NewDocumentFromNode(doc).Find(HostSelector).Each(func(_ int, s *goquery.Selection) {
		host := s.Get(0)
		root := dom.ShadowRoot(host)
		if root == nil {
			return
		}
		tbl := dom.FindFirst(root, "table")
		if tbl == nil {
			return
		}
		h := Handle{Node: tbl, Caption: dom.Text(dom.FindFirst(tbl, "caption"))}
		if thead := dom.FindFirst(tbl, "thead"); thead != nil {
			for _, th := range dom.FindAll(thead, "th") {
				h.Headers = append(h.Headers, dom.Text(th))
			}
		}
		if tbody := dom.FindFirst(tbl, "tbody"); tbody != nil {
			for _, tr := range dom.FindAll(tbody, "tr") {
				h.Body = append(h.Body, cellTexts(tr))
			}
		}
		out = append(out, h)
	})
	return out
}

// cellTexts returns the resolved text of a row's th and td cells in document
// order.
func cellTexts(tr *html.Node) []string {
	var out []string
	var dfs func(*html.Node)
	dfs = func(n *html.Node) {
		if dom.IsElement(n, "th") || dom.IsElement(n, "td") {
			out = append(out, dom.Text(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		dfs(c)
	}
	return out
}

var pctRe = regexp.MustCompile(`(\d+)\s*%`)

// Classify determines the table category. Caption text wins when it names
// one; otherwise header heuristics decide. The second return reports the
// two-column low-rating shape (ratings in the first body column), which is
// always extracted as Basic regardless of caption.
func Classify(caption string, headers []string) (dataset.Category, bool) {
	twoCol := IsTwoColumnLowRating(headers)

	switch {
	case strings.Contains(caption, "Basic"):
		return dataset.Basic, twoCol
	case strings.Contains(caption, "Added"):
		return dataset.Added, twoCol
	}

	if twoCol || containsAny(headers, "Dependent status") {
		return dataset.Basic, twoCol
	}
	if containsAny(headers, "Added") {
		return dataset.Added, twoCol
	}
	return dataset.Basic, twoCol
}

// IsTwoColumnLowRating reports the 10–20% table shape: exactly two header
// columns and no percentage anywhere in the headers.
func IsTwoColumnLowRating(headers []string) bool {
	if len(headers) != 2 {
		return false
	}
	for _, h := range headers {
		if pctRe.MatchString(h) {
			return false
		}
	}
	return true
}

// RatingsFromHeaders extracts the first "N%" integer per header text; nil
// entries mark headers with no rating.
func RatingsFromHeaders(headers []string) []*int {
	out := make([]*int, len(headers))
	for i, h := range headers {
		out[i] = Rating(h)
	}
	return out
}

// Rating extracts the first percentage integer from a single text, or nil.
func Rating(text string) *int {
	m := pctRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func containsAny(headers []string, needle string) bool {
	for _, h := range headers {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
