// Package rows turns classified table handles into normalized rate rows.
package rows

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/varates/internal/dataset"
	"github.com/hyperifyio/varates/internal/section"
	"github.com/hyperifyio/varates/internal/table"
)

const (
	groupAll          = "All"
	groupNoChildren   = "No children"
	groupWithChildren = "With children"
)

// Heading id prefixes the VA page uses for the two dependent sections. The
// ids are truncated by the CMS, hence prefix matching.
const (
	spouseOrParentPrefix    = "with-a-dependent-spouse-or-par"
	includingChildrenPrefix = "with-dependents-including-chil"
)

// Override maps a located section heading to a forced dependent group, or ""
// when the heading does not name one and label-based inference applies.
func Override(meta *section.Meta) string {
	if meta == nil {
		return ""
	}
	id := strings.ToLower(meta.ID)
	switch {
	case strings.HasPrefix(id, spouseOrParentPrefix):
		return groupNoChildren
	case strings.HasPrefix(id, includingChildrenPrefix):
		return groupWithChildren
	}
	return ""
}

// Normalize extracts zero or more rows from one table. Unparseable cells are
// skipped with a debug diagnostic; they never abort the run. The result is a
// pure function of the handle, the section meta, and the year.
func Normalize(h table.Handle, meta *section.Meta, year int) []dataset.Row {
	override := Override(meta)
	category, twoCol := table.Classify(h.Caption, h.Headers)

	if twoCol {
		return normalizeTwoColumn(h, override, year)
	}
	return normalizeGeneral(h, category, override, year)
}

// normalizeTwoColumn handles the 10–20% table: ratings sit in the first body
// column rather than in headers, and every row carries the "All" status.
func normalizeTwoColumn(h table.Handle, override string, year int) []dataset.Row {
	group := override
	if group == "" {
		group = groupAll
	}
	var out []dataset.Row
	for _, cells := range h.Body {
		if len(cells) < 2 {
			continue
		}
		rating := table.Rating(cells[0])
		if rating == nil {
			continue
		}
		rate, err := ParseMoney(cells[1])
		if err != nil {
			log.Debug().Str("cell", cells[1]).Str("row", cells[0]).Msg("skipping unparsable rate in low-rating table")
			continue
		}
		out = append(out, dataset.Row{
			Year:            year,
			Rating:          *rating,
			DependentGroup:  group,
			DependentStatus: groupAll,
			Category:        dataset.Basic,
			MonthlyRate:     rate,
		})
	}
	return out
}

// normalizeGeneral handles tables whose ratings live in header columns 2..N.
// Each body row fans out into one output row per column that has both a
// resolvable rating and a parseable amount.
func normalizeGeneral(h table.Handle, category dataset.Category, override string, year int) []dataset.Row {
	ratings := table.RatingsFromHeaders(h.Headers)

	var out []dataset.Row
	for _, cells := range h.Body {
		if len(cells) == 0 {
			continue
		}
		label := cells[0]

		var group, status, addedItem string
		if category == dataset.Added {
			addedItem = label
		} else {
			status = label
			group = override
			if group == "" {
				group = inferGroup(label)
			}
		}

		for col := 1; col < len(cells); col++ {
			if cells[col] == "" {
				continue
			}
			var rating *int
			if col < len(ratings) {
				rating = ratings[col]
			}
			if rating == nil && col < len(h.Headers) {
				rating = table.Rating(h.Headers[col])
			}
			if rating == nil {
				continue
			}
			rate, err := ParseMoney(cells[col])
			if err != nil {
				log.Debug().Str("cell", cells[col]).Str("row", label).Int("col", col).Msg("skipping unparsable rate")
				continue
			}
			out = append(out, dataset.Row{
				Year:            year,
				Rating:          *rating,
				DependentGroup:  group,
				DependentStatus: status,
				Category:        category,
				AddedItem:       addedItem,
				MonthlyRate:     rate,
			})
		}
	}
	return out
}

// inferGroup derives the dependent group from a status label when no section
// heading forces one.
func inferGroup(label string) string {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "child"):
		return groupWithChildren
	case strings.Contains(lower, "spouse"), strings.Contains(lower, "parent"):
		return groupNoChildren
	}
	return groupAll
}

var moneyClean = strings.NewReplacer("$", "", ",", "", " ", " ")

// ParseMoney parses a monetary cell like "$1,234.56" into its numeric value,
// tolerating currency symbols, thousands separators, and non-breaking
// spaces.
func ParseMoney(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(moneyClean.Replace(s)), 64)
}
