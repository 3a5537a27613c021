package domain

import "fmt"

// ValidationResult is the outcome of a business-rule check. Errors block a
// write; warnings do not.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

const (
	maxNameLength     = 200
	highCostWarnLimit = 1_000_000
)

// Validate runs the business-rule checks without mutating the activity.
func (a *Activity) Validate() ValidationResult {
	var errs, warns []string

	if a.Name == "" {
		errs = append(errs, "activity name is required")
	} else if len(a.Name) > maxNameLength {
		warns = append(warns, fmt.Sprintf("activity name exceeds %d characters", maxNameLength))
	}

	if a.Date.IsZero() {
		errs = append(errs, "date is required (expected YYYY-MM-DD)")
	}

	if a.Cost < 0 {
		errs = append(errs, "cost must not be negative")
	} else if a.Cost > highCostWarnLimit {
		warns = append(warns, "cost is unusually large")
	}

	if start, okS := parseClock(a.StartTime); okS {
		if end, okE := parseClock(a.EndTime); okE && end < start {
			warns = append(warns, "end time is before start time")
		}
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}
