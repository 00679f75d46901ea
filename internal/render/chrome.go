package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/varates/internal/table"
)

// Chrome renders the live page through a headless browser. The custom rate
// tables build their cells client-side inside shadow roots, so a plain HTTP
// fetch would see empty hosts; rendering then serializing the composed tree
// is the only way to observe them.
type Chrome struct {
	// Headless controls browser visibility; production runs keep it on.
	Headless bool
	// HydrationTimeout bounds the wait for the table components to finish
	// client-side initialization. Zero selects the default of 15s.
	HydrationTimeout time.Duration
}

func (c *Chrome) Name() string { return "chrome" }

func (c *Chrome) Render(ctx context.Context, url string) (*Snapshot, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.Headless),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := c.HydrationTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	var expanded int
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(jsExpandAccordions, &expanded),
		// Give freshly expanded panels a beat to hydrate their tables.
		chromedp.Sleep(300*time.Millisecond),
	); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}
	log.Debug().Int("count", expanded).Msg("clicked expand-all on accordions")

	// Bounded wait for the hydration marker; the page is unusable without it.
	waitCtx, cancelWait := context.WithTimeout(browserCtx, timeout)
	defer cancelWait()
	if err := chromedp.Run(waitCtx, chromedp.WaitReady(table.HostSelector, chromedp.ByQuery)); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w within %s", ErrHydrationTimeout, timeout)
		}
		return nil, fmt.Errorf("wait for %s: %w", table.HostSelector, err)
	}

	var serialized string
	if err := chromedp.Run(browserCtx, chromedp.Evaluate(jsSerializeComposed, &serialized)); err != nil {
		return nil, fmt.Errorf("serialize page: %w", err)
	}
	doc, err := Parse(strings.NewReader(serialized))
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}
	return &Snapshot{Doc: doc, ExpandedAccordions: expanded}, nil
}

// jsExpandAccordions clicks every expand-all accordion control, piercing
// open shadow roots, and returns the number of successful clicks. Failures
// on individual controls are swallowed: expansion is best-effort.
const jsExpandAccordions = `(() => {
  const buttons = [];
  const walk = (root) => {
    for (const el of root.querySelectorAll('*')) {
      if (el.matches('button[data-testid="expand-all-accordions"]')) buttons.push(el);
      if (el.shadowRoot) walk(el.shadowRoot);
    }
  };
  walk(document);
  let clicked = 0;
  for (const b of buttons) {
    try { b.click(); clicked++; } catch (e) {}
  }
  return clicked;
})()`

// jsSerializeComposed serializes the live DOM with every open shadow root
// emitted as a declarative <template shadowrootmode> child of its host, so
// the Go side can resolve slots and pierce boundaries on a static tree.
// Scripts and styles are dropped; only structure and text matter downstream.
const jsSerializeComposed = `(() => {
  const escText = (s) => s.replace(/&/g, '&amp;').replace(/</g, '&lt;').replace(/>/g, '&gt;');
  const escAttr = (s) => escText(s).replace(/"/g, '&quot;');
  const voidTags = new Set(['area', 'base', 'br', 'col', 'embed', 'hr', 'img', 'input', 'link', 'meta', 'source', 'track', 'wbr']);
  const ser = (node) => {
    if (node.nodeType === Node.TEXT_NODE) return escText(node.textContent || '');
    if (node.nodeType !== Node.ELEMENT_NODE) return '';
    const tag = node.tagName.toLowerCase();
    if (tag === 'script' || tag === 'style' || tag === 'noscript') return '';
    let out = '<' + tag;
    for (const a of node.attributes) out += ' ' + a.name + '="' + escAttr(a.value) + '"';
    out += '>';
    if (voidTags.has(tag)) return out;
    if (node.shadowRoot) {
      out += '<template shadowrootmode="' + node.shadowRoot.mode + '">';
      for (const c of node.shadowRoot.childNodes) out += ser(c);
      out += '</template>';
    }
    for (const c of node.childNodes) out += ser(c);
    return out + '</' + tag + '>';
  };
  return '<!DOCTYPE html>' + ser(document.documentElement);
})()`
