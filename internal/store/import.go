package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jthornhill/wayfare/internal/domain"
)

// DefaultImportBatchSize is the chunk size used when the caller does not
// set one.
const DefaultImportBatchSize = 50

// ImportOptions configures a bulk import.
type ImportOptions struct {
	// SkipDuplicates drops rows whose name+date+startTime matches an
	// existing entry or an earlier row of the same import.
	SkipDuplicates bool
	// SkipValidation admits rows that fail the business-rule check.
	SkipValidation bool
	BatchSize      int
}

// ImportRowError records why one row was skipped. Row is 1-based.
type ImportRowError struct {
	Row     int
	Reasons []string
}

func (e ImportRowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, strings.Join(e.Reasons, "; "))
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Imported       int
	Skipped        int
	Errors         []ImportRowError
	TotalProcessed int
}

// Import appends activities built from the given rows, processing them in
// batches and releasing the store lock between batches so a host loop stays
// responsive. Row failures are collected, never fatal; the context is only
// checked between batches. Sorting, filtering and cache invalidation run
// once at the end rather than per row.
func (s *Store) Import(ctx context.Context, rows []domain.Input, opts ImportOptions) (*ImportResult, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultImportBatchSize
	}

	result := &ImportResult{}
	seen := s.duplicateKeys()

	for start := 0; start < len(rows); start += opts.BatchSize {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("import interrupted after %d rows: %w", result.TotalProcessed, err)
		}

		end := start + opts.BatchSize
		if end > len(rows) {
			end = len(rows)
		}

		s.mu.Lock()
		for i, in := range rows[start:end] {
			rowNum := start + i + 1
			result.TotalProcessed++

			if len(s.activities) >= s.opts.MaxActivities {
				result.Skipped++
				result.Errors = append(result.Errors, ImportRowError{
					Row:     rowNum,
					Reasons: []string{ErrCapacity.Error()},
				})
				continue
			}

			a := domain.New(in, s.now())

			if !opts.SkipValidation {
				if res := a.Validate(); !res.Valid {
					result.Skipped++
					result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Reasons: res.Errors})
					continue
				}
			}

			key := duplicateKey(a)
			if opts.SkipDuplicates && seen[key] {
				result.Skipped++
				result.Errors = append(result.Errors, ImportRowError{
					Row:     rowNum,
					Reasons: []string{"duplicate of existing activity"},
				})
				continue
			}
			seen[key] = true

			s.activities = append(s.activities, a)
			result.Imported++
		}
		s.mu.Unlock()
	}

	if result.Imported > 0 {
		s.mu.Lock()
		s.rederive()
		s.observer.ObserveMutation(MutationImport, "", map[string]any{
			"imported": result.Imported,
			"skipped":  result.Skipped,
		})
		count := len(s.activities)
		s.mu.Unlock()

		s.emitter.Emit(EventDataUpdated, count)
	}
	return result, nil
}

// duplicateKeys snapshots the dedup keys of the current collection.
func (s *Store) duplicateKeys() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make(map[string]bool, len(s.activities))
	for _, a := range s.activities {
		keys[duplicateKey(a)] = true
	}
	return keys
}

// duplicateKey identifies an activity for duplicate detection: same name,
// date and start time.
func duplicateKey(a *domain.Activity) string {
	return strings.ToLower(a.Name) + "|" + a.DateString() + "|" + a.StartTime
}
