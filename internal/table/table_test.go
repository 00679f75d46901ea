package table

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/hyperifyio/varates/internal/dataset"
)

func TestClassify_CaptionWins(t *testing.T) {
	cases := []struct {
		caption string
		headers []string
		want    dataset.Category
	}{
		{"Basic monthly rates", []string{"Dependent status", "70% rating"}, dataset.Basic},
		{"Added amounts", []string{"Item", "70% rating"}, dataset.Added},
	}
	for _, c := range cases {
		got, _ := Classify(c.caption, c.headers)
		if got != c.want {
			t.Fatalf("Classify(%q) = %v, want %v", c.caption, got, c.want)
		}
	}
}

func TestClassify_FallbackWithoutCaption(t *testing.T) {
	if got, _ := Classify("", []string{"Dependent status", "70% rating", "80% rating"}); got != dataset.Basic {
		t.Fatalf("dependent-status header should fall back to Basic, got %v", got)
	}
	if got, _ := Classify("", []string{"Added amount", "70% rating"}); got != dataset.Added {
		t.Fatalf("Added header should fall back to Added, got %v", got)
	}
	if got, _ := Classify("", []string{"Something", "70% rating"}); got != dataset.Basic {
		t.Fatalf("default fallback should be Basic, got %v", got)
	}
}

func TestClassify_TwoColumnAlwaysBasic(t *testing.T) {
	got, twoCol := Classify("Added amounts", []string{"Rating", "Monthly rate"})
	if !twoCol {
		t.Fatal("expected the two-column low-rating shape")
	}
	// Caption still reports Added; the extraction path is what forces Basic.
	if got != dataset.Added {
		t.Fatalf("Classify = %v", got)
	}
}

func TestIsTwoColumnLowRating(t *testing.T) {
	if !IsTwoColumnLowRating([]string{"Rating", "Monthly rate"}) {
		t.Fatal("two plain headers should match")
	}
	if IsTwoColumnLowRating([]string{"Rating", "70% rating"}) {
		t.Fatal("percent header must not match")
	}
	if IsTwoColumnLowRating([]string{"Rating", "Monthly rate", "Extra"}) {
		t.Fatal("three columns must not match")
	}
}

func TestRatingsFromHeaders(t *testing.T) {
	ratings := RatingsFromHeaders([]string{
		"Dependent status",
		"70% disability rating (in U.S. $)",
		"80 % disability rating",
	})
	if ratings[0] != nil {
		t.Fatalf("ratings[0] = %v, want nil", *ratings[0])
	}
	if ratings[1] == nil || *ratings[1] != 70 {
		t.Fatalf("ratings[1] = %v, want 70", ratings[1])
	}
	if ratings[2] == nil || *ratings[2] != 80 {
		t.Fatalf("ratings[2] = %v, want 80 despite intervening space", ratings[2])
	}
}

const collectFixture = `<body>
<va-table><va-table-inner class="hydrated">
	<template shadowrootmode="open"><table>
		<caption><slot name="caption"></slot></caption>
		<thead><tr><th><slot name="h0"></slot></th><th><slot name="h1"></slot></th></tr></thead>
		<tbody>
			<tr><td><slot name="r0c0"></slot></td><td><slot name="r0c1"></slot></td></tr>
		</tbody>
	</table></template>
	<span slot="caption">Basic monthly rates</span>
	<span slot="h0">Dependent status</span>
	<span slot="h1">70% disability rating (in U.S. $)</span>
	<span slot="r0c0">Veteran alone (no dependents)</span>
	<span slot="r0c1">$1,716.28</span>
</va-table-inner></va-table>
<va-table-inner class="hydrated"><div>no shadow table here</div></va-table-inner>
<va-table-inner>not hydrated<template shadowrootmode="open"><table><tbody><tr><td>x</td></tr></tbody></table></template></va-table-inner>
</body>`

func TestCollect(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(collectFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	handles := Collect(doc)
	if len(handles) != 1 {
		t.Fatalf("expected 1 handle (hydrated, with shadow table), got %d", len(handles))
	}
	h := handles[0]
	if h.Caption != "Basic monthly rates" {
		t.Fatalf("Caption = %q", h.Caption)
	}
	if len(h.Headers) != 2 || h.Headers[0] != "Dependent status" {
		t.Fatalf("Headers = %q", h.Headers)
	}
	if len(h.Body) != 1 || len(h.Body[0]) != 2 {
		t.Fatalf("Body = %q", h.Body)
	}
	if h.Body[0][1] != "$1,716.28" {
		t.Fatalf("cell = %q, want slotted amount", h.Body[0][1])
	}
}
