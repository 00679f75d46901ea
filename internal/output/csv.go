package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hyperifyio/varates/internal/dataset"
)

// WriteCSV writes the dataset as a comma-delimited file with a header row.
func WriteCSV(path string, rows []dataset.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(Record(r)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
