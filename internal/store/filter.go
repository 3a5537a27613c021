package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/jthornhill/wayfare/internal/domain"
)

// FilterPatch is a partial filter update. Nil fields leave the current
// value untouched. Set fields are normalized independently: values that do
// not parse degrade to the permissive default instead of erroring.
type FilterPatch struct {
	Search     *string
	StartDate  *string // YYYY-MM-DD; unparseable clears the bound
	EndDate    *string
	Transport  *string
	Booking    *[]string // allow-set; unknown values dropped
	MinCost    *string   // unparseable or negative clears the bound
	MaxCost    *string
	Categories *[]string // allow-set; unknown values dropped
}

// Filters returns a deep copy of the current filter state.
func (s *Store) Filters() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// Sort returns the current sort configuration.
func (s *Store) Sort() domain.SortConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortCfg
}

// UpdateFilters normalizes and merges the patch into the filter state, then
// re-applies filtering and emits filter-changed.
func (s *Store) UpdateFilters(p FilterPatch) domain.FilterState {
	s.mu.Lock()

	if p.Search != nil {
		s.filters.Search = strings.TrimSpace(*p.Search)
	}
	if p.StartDate != nil {
		s.filters.StartDate = parseFilterDate(*p.StartDate)
	}
	if p.EndDate != nil {
		s.filters.EndDate = parseFilterDate(*p.EndDate)
	}
	if p.Transport != nil {
		s.filters.Transport = strings.TrimSpace(*p.Transport)
	}
	if p.Booking != nil {
		s.filters.Booking = normalizeBookingSet(*p.Booking)
	}
	if p.MinCost != nil {
		s.filters.MinCost = parseFilterCost(*p.MinCost)
	}
	if p.MaxCost != nil {
		s.filters.MaxCost = parseFilterCost(*p.MaxCost)
	}
	if p.Categories != nil {
		s.filters.Categories = normalizeCategorySet(*p.Categories)
	}

	s.filterLocked()
	s.dirty = true
	current := s.filters.Clone()
	s.mu.Unlock()

	s.emitter.Emit(EventFilterChanged, current)
	return current
}

// ResetFilters restores the permissive defaults.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	s.filters = domain.DefaultFilter()
	s.filterLocked()
	s.dirty = true
	current := s.filters.Clone()
	s.mu.Unlock()

	s.emitter.Emit(EventFilterChanged, current)
}

// SetSort updates the sort configuration, re-sorts the backing collection
// and re-applies filtering. Unknown fields fall back to date, unknown
// orders to ascending.
func (s *Store) SetSort(field, order string) domain.SortConfig {
	s.mu.Lock()

	if domain.ValidSortFields[field] {
		s.sortCfg.Field = domain.SortField(field)
	} else {
		s.sortCfg.Field = domain.SortByDate
	}
	if domain.SortOrder(order) == domain.SortDesc {
		s.sortCfg.Order = domain.SortDesc
	} else {
		s.sortCfg.Order = domain.SortAsc
	}

	s.sortLocked()
	s.filterLocked()
	s.dirty = true
	cfg := s.sortCfg
	s.mu.Unlock()

	s.emitter.Emit(EventSortChanged, cfg)
	return cfg
}

// ApplyFilters recomputes the filtered view from the full collection.
// Exposed so callers can force a recompute; every mutation already does.
func (s *Store) ApplyFilters() []*domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterLocked()
	return append([]*domain.Activity(nil), s.filtered...)
}

// filterLocked narrows the backing collection into the filtered view by
// applying each configured predicate in turn. It never panics: a recovered
// failure falls back to the full collection so the caller always has a
// renderable view. Callers must hold s.mu.
func (s *Store) filterLocked() {
	defer func() {
		if rec := recover(); rec != nil {
			s.filtered = append([]*domain.Activity(nil), s.activities...)
		}
	}()

	f := s.filters
	view := append([]*domain.Activity(nil), s.activities...)

	if f.Search != "" {
		view = keep(view, func(a *domain.Activity) bool { return a.Matches(f.Search) })
	}
	if f.StartDate != nil {
		view = keep(view, func(a *domain.Activity) bool {
			return !a.Date.IsZero() && !a.Date.Before(*f.StartDate)
		})
	}
	if f.EndDate != nil {
		view = keep(view, func(a *domain.Activity) bool {
			return !a.Date.IsZero() && !a.Date.After(*f.EndDate)
		})
	}
	if f.Transport != "" {
		view = keep(view, func(a *domain.Activity) bool {
			return strings.EqualFold(a.TransportMode, f.Transport)
		})
	}
	// When both statuses are allowed the booking filter is a no-op.
	if !f.AllowsAllBookings() {
		view = keep(view, func(a *domain.Activity) bool { return f.AllowsBooking(a.Booking) })
	}
	if f.MinCost != nil {
		view = keep(view, func(a *domain.Activity) bool { return a.Cost >= *f.MinCost })
	}
	if f.MaxCost != nil {
		view = keep(view, func(a *domain.Activity) bool { return a.Cost <= *f.MaxCost })
	}
	if len(f.Categories) > 0 {
		view = keep(view, func(a *domain.Activity) bool { return f.AllowsCategory(a.Category) })
	}

	s.filtered = view
}

func keep(in []*domain.Activity, pred func(*domain.Activity) bool) []*domain.Activity {
	out := in[:0]
	for _, a := range in {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

func parseFilterDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseFilterCost(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func normalizeBookingSet(values []string) []domain.BookingStatus {
	if len(values) == 0 {
		return []domain.BookingStatus{domain.BookingBooked, domain.BookingNotBooked}
	}
	var out []domain.BookingStatus
	for _, v := range values {
		switch strings.ToUpper(strings.TrimSpace(v)) {
		case string(domain.BookingBooked):
			out = append(out, domain.BookingBooked)
		case string(domain.BookingNotBooked):
			out = append(out, domain.BookingNotBooked)
		}
	}
	if len(out) == 0 {
		return []domain.BookingStatus{domain.BookingBooked, domain.BookingNotBooked}
	}
	return out
}

func normalizeCategorySet(values []string) []domain.Category {
	var out []domain.Category
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if domain.ValidCategories[v] {
			out = append(out, domain.Category(v))
		}
	}
	return out
}
