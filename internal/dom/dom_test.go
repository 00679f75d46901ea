package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestText_ResolvesNamedSlot(t *testing.T) {
	doc := parse(t, `<my-cell>
		<template shadowrootmode="open"><table><tbody><tr>
			<td><slot name="content">fallback</slot></td>
		</tr></tbody></table></template>
		<span slot="content">10% disability rating</span>
	</my-cell>`)
	td := FindFirst(doc, "td")
	if td == nil {
		t.Fatal("fixture has no td")
	}
	if got := Text(td); got != "10% disability rating" {
		t.Fatalf("Text = %q, want slotted content", got)
	}
}

func TestText_UnassignedSlotRendersFallback(t *testing.T) {
	doc := parse(t, `<my-cell>
		<template shadowrootmode="open"><table><tbody><tr>
			<td><slot name="content">fallback</slot></td>
		</tr></tbody></table></template>
	</my-cell>`)
	if got := Text(FindFirst(doc, "td")); got != "fallback" {
		t.Fatalf("Text = %q, want fallback content", got)
	}
}

func TestText_UnnamedSlotTakesLightChildren(t *testing.T) {
	doc := parse(t, `<my-cell>
		<template shadowrootmode="open"><table><thead><tr>
			<th><slot></slot></th>
		</tr></thead></table></template>
		Dependent status
	</my-cell>`)
	if got := Text(FindFirst(doc, "th")); got != "Dependent status" {
		t.Fatalf("Text = %q, want light-DOM text", got)
	}
}

func TestText_PrefersNestedSlotOverDirectChildren(t *testing.T) {
	// A cell whose subtree contains a slot renders the distributed content,
	// not the placeholder's own (empty) children.
	doc := parse(t, `<my-cell>
		<template shadowrootmode="open"><table><tbody><tr>
			<td><span class="wrap"><slot name="v"></slot></span></td>
		</tr></tbody></table></template>
		<span slot="v">$1,075.16</span>
	</my-cell>`)
	if got := Text(FindFirst(doc, "td")); got != "$1,075.16" {
		t.Fatalf("Text = %q, want distributed content", got)
	}
}

func TestText_NormalizesWhitespaceAndNBSP(t *testing.T) {
	doc := parse(t, "<p>  $1,234.56   per \n month </p>")
	if got := Text(FindFirst(doc, "p")); got != "$1,234.56 per month" {
		t.Fatalf("Text = %q", got)
	}
}

func TestText_NilNode(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Fatalf("Text(nil) = %q, want empty", got)
	}
}

func TestShadowRootAndHost(t *testing.T) {
	doc := parse(t, `<x-host><template shadowrootmode="open"><table><tbody><tr><td>v</td></tr></tbody></table></template></x-host>`)
	hostEl := FindFirst(doc, "x-host")
	root := ShadowRoot(hostEl)
	if root == nil {
		t.Fatal("expected a declarative shadow root")
	}
	td := FindFirst(root, "td")
	if td == nil {
		t.Fatal("expected td inside the shadow root")
	}
	if got := Host(td); got != hostEl {
		t.Fatalf("Host walked to %v, want the x-host element", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  a \t b c  "); got != "a b c" {
		t.Fatalf("Normalize = %q", got)
	}
}
