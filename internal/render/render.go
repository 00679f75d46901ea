// Package render abstracts the page-rendering capability the extraction core
// depends on. A Renderer yields a composed-DOM snapshot in which shadow roots
// appear as declarative <template shadowrootmode> subtrees, so the rest of
// the pipeline works on a plain HTML tree regardless of backend.
package render

import (
	"context"
	"errors"
	"io"

	"golang.org/x/net/html"
)

// Snapshot is the rendered page handed to the extraction core.
type Snapshot struct {
	Doc *html.Node
	// ExpandedAccordions counts the expand-all controls successfully
	// clicked before the snapshot was taken. Best-effort: failures are not
	// reflected here and never fail the render.
	ExpandedAccordions int
}

// Renderer renders a single page location into a snapshot.
type Renderer interface {
	Render(ctx context.Context, url string) (*Snapshot, error)
	Name() string
}

// ErrHydrationTimeout is returned when the rate-table components never
// finish client-side initialization within the configured bound.
var ErrHydrationTimeout = errors.New("rate tables never hydrated")

// Parse builds a snapshot document from serialized HTML.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}
