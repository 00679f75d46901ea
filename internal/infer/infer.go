package infer

import (
	"regexp"
	"strings"
)

// Inference holds dependent attributes parsed from a free-text status label
// such as "With spouse and 2 parents (no children)".
type Inference struct {
	HasSpouse   bool
	ParentCount int
	HasChild    bool
}

var (
	clauseSplitRe  = regexp.MustCompile(`[(),;]`)
	negationRe     = regexp.MustCompile(`\b(no|without|none|alone)\b`)
	childRe        = regexp.MustCompile(`\bchild(ren)?\b`)
	spouseRe       = regexp.MustCompile(`\bspouses?\b`)
	parentPluralRe = regexp.MustCompile(`\b(2|two)\s+parents\b|\bparents\b`)
	parentSingleRe = regexp.MustCompile(`\b(1|one|a)\s+parent\b|\bparent\b`)
)

// Dependents parses a dependent-status label into structured attributes.
// Matching is case-insensitive. Negation words ("no", "without", "alone")
// apply to every dependent keyword inside the same clause, where clauses are
// delimited by parentheses, commas, and semicolons, so "no parents or
// children" negates both mentions. An explicit negation wins over an
// affirmation elsewhere in the label. Total: every input yields a result.
func Dependents(status string) Inference {
	var inf Inference
	lower := strings.ToLower(status)

	var spousePos, spouseNeg, childPos, childNeg, parentNeg bool
	parentCount := 0

	for _, clause := range clauseSplitRe.Split(lower, -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		negated := negationRe.MatchString(clause)

		if spouseRe.MatchString(clause) {
			if negated {
				spouseNeg = true
			} else {
				spousePos = true
			}
		}
		if childRe.MatchString(clause) {
			if negated {
				childNeg = true
			} else {
				childPos = true
			}
		}
		if parentPluralRe.MatchString(clause) {
			if negated {
				parentNeg = true
			} else if parentCount < 2 {
				parentCount = 2
			}
		} else if parentSingleRe.MatchString(clause) {
			if negated {
				parentNeg = true
			} else if parentCount < 1 {
				parentCount = 1
			}
		}
	}

	inf.HasSpouse = spousePos && !spouseNeg
	inf.HasChild = childPos && !childNeg
	if !parentNeg {
		inf.ParentCount = parentCount
	}
	return inf
}
