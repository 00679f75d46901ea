package dataset

import (
	"errors"
	"fmt"

	"github.com/hyperifyio/varates/internal/infer"
)

// Category is the semantic kind of a source table.
type Category string

const (
	Basic Category = "Basic"
	Added Category = "Added"
)

// Row is one normalized benefit-rate observation. AddedItem is only set for
// Added rows; DependentGroup/DependentStatus are only set for Basic rows.
// The inference fields stay nil for Added rows.
type Row struct {
	Year            int
	Rating          int
	DependentGroup  string
	DependentStatus string
	Category        Category
	AddedItem       string
	MonthlyRate     float64

	HasSpouse   *bool
	ParentCount *int
	HasChild    *bool
}

// Key returns the full-row identity used for deduplication. Inference fields
// are excluded since they derive from DependentStatus.
func (r Row) Key() string {
	return fmt.Sprintf("%d|%d|%s|%s|%s|%s|%v",
		r.Year, r.Rating, r.DependentGroup, r.DependentStatus, r.Category, r.AddedItem, r.MonthlyRate)
}

// ErrEmpty is returned when a run produced zero rows. Per the exit code
// policy this surfaces as a non-zero process exit.
var ErrEmpty = errors.New("no rows were extracted")

// Summary reports what Assemble did, for diagnostics.
type Summary struct {
	Removed int
	Final   int
}

// Assemble deduplicates rows on full-row identity keeping the first
// occurrence in order, then enriches Basic rows with dependent attributes
// inferred from their status label. Added rows keep nil inference fields.
func Assemble(rows []Row) ([]Row, Summary, error) {
	seen := map[string]struct{}{}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		key := r.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if r.Category == Basic {
			d := infer.Dependents(r.DependentStatus)
			hs, pc, hc := d.HasSpouse, d.ParentCount, d.HasChild
			r.HasSpouse = &hs
			r.ParentCount = &pc
			r.HasChild = &hc
		}
		out = append(out, r)
	}
	sum := Summary{Removed: len(rows) - len(out), Final: len(out)}
	if len(out) == 0 {
		return nil, sum, ErrEmpty
	}
	return out, sum, nil
}
