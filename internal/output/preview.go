package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hyperifyio/varates/internal/dataset"
)

// Preview prints the first n rows as an aligned table. Nothing is written to
// disk; preview and file output are mutually exclusive per run.
func Preview(w io.Writer, rows []dataset.Row, n int) error {
	if n < 0 {
		n = 0
	}
	if n > len(rows) {
		n = len(rows)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(Columns, "\t")); err != nil {
		return err
	}
	for _, r := range rows[:n] {
		if _, err := fmt.Fprintln(tw, strings.Join(Record(r), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
