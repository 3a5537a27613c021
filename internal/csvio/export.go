// Package csvio reads and writes the activity CSV interchange format:
// a header row followed by one row per activity, with RFC 4180 quoting.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jthornhill/wayfare/internal/domain"
)

// Export writes the header and one row per activity, in the order given.
func Export(w io.Writer, activities []*domain.Activity) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(domain.CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, a := range activities {
		if err := cw.Write(a.ToCSVRecord()); err != nil {
			return fmt.Errorf("writing activity %s: %w", a.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
