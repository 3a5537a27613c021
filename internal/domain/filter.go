package domain

import "time"

// FilterState holds the narrowing criteria applied to the active collection.
// Pointer fields distinguish "not set" from zero values; slice fields are
// allow-sets where nil or a full set means no narrowing.
type FilterState struct {
	Search     string
	StartDate  *time.Time // inclusive
	EndDate    *time.Time // inclusive
	Transport  string     // exact match, "" = any
	Booking    []BookingStatus
	MinCost    *float64 // inclusive
	MaxCost    *float64 // inclusive
	Categories []Category
}

// DefaultFilter returns the permissive filter: everything passes.
func DefaultFilter() FilterState {
	return FilterState{
		Booking: []BookingStatus{BookingBooked, BookingNotBooked},
	}
}

// AllowsAllBookings reports whether the booking allow-set imposes no
// narrowing: both statuses present, or none.
func (f FilterState) AllowsAllBookings() bool {
	if len(f.Booking) == 0 {
		return true
	}
	seen := map[BookingStatus]bool{}
	for _, b := range f.Booking {
		seen[b] = true
	}
	return seen[BookingBooked] && seen[BookingNotBooked]
}

// AllowsBooking reports whether the given status passes the allow-set.
func (f FilterState) AllowsBooking(b BookingStatus) bool {
	if f.AllowsAllBookings() {
		return true
	}
	for _, allowed := range f.Booking {
		if allowed == b {
			return true
		}
	}
	return false
}

// AllowsCategory reports whether the given category passes the allow-set.
// An empty set is permissive.
func (f FilterState) AllowsCategory(c Category) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, allowed := range f.Categories {
		if allowed == c {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the filter state.
func (f FilterState) Clone() FilterState {
	dup := f
	if f.StartDate != nil {
		t := *f.StartDate
		dup.StartDate = &t
	}
	if f.EndDate != nil {
		t := *f.EndDate
		dup.EndDate = &t
	}
	if f.MinCost != nil {
		v := *f.MinCost
		dup.MinCost = &v
	}
	if f.MaxCost != nil {
		v := *f.MaxCost
		dup.MaxCost = &v
	}
	dup.Booking = append([]BookingStatus(nil), f.Booking...)
	dup.Categories = append([]Category(nil), f.Categories...)
	return dup
}

// SortConfig determines the total ordering of the backing collection.
type SortConfig struct {
	Field SortField
	Order SortOrder
}

// DefaultSort returns the default ordering: date ascending.
func DefaultSort() SortConfig {
	return SortConfig{Field: SortByDate, Order: SortAsc}
}
