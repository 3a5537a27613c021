package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jthornhill/wayfare/internal/domain"
)

// ReadInputs parses a CSV stream into construction records. The first row
// is the header; both canonical names ("Start Time") and camel-case field
// names ("startTime") are accepted per column. Rows shorter than the header
// are padded with empty cells, longer rows are truncated.
func ReadInputs(r io.Reader) ([]domain.Input, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var inputs []domain.Input
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inputs, fmt.Errorf("reading csv row %d: %w", len(inputs)+2, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		inputs = append(inputs, domain.InputFromCSVRow(row))
	}
	return inputs, nil
}
