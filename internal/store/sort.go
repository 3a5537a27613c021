package store

import (
	"sort"
	"strings"

	"github.com/jthornhill/wayfare/internal/domain"
)

// SortActivities re-sorts the backing collection by the current sort
// configuration and refreshes the filtered view.
func (s *Store) SortActivities() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortLocked()
	s.filterLocked()
}

// sortLocked applies a stable sort to the backing collection. Date-typed
// fields compare chronologically with unparsed values at the epoch, cost
// compares numerically, text fields compare case-insensitively. Start times
// are zero-padded "HH:MM" at construction, so their string order is
// chronological. Descending order flips the comparator. Callers must hold
// s.mu.
func (s *Store) sortLocked() {
	field := s.sortCfg.Field
	desc := s.sortCfg.Order == domain.SortDesc

	sort.SliceStable(s.activities, func(i, j int) bool {
		a, b := s.activities[i], s.activities[j]
		if desc {
			return lessByField(b, a, field)
		}
		return lessByField(a, b, field)
	})
}

func lessByField(a, b *domain.Activity, field domain.SortField) bool {
	switch field {
	case domain.SortByCost:
		return a.Cost < b.Cost
	case domain.SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case domain.SortByStartTime:
		return a.StartTime < b.StartTime
	case domain.SortByCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	case domain.SortByUpdatedAt:
		return a.UpdatedAt.Before(b.UpdatedAt)
	default: // date
		return a.Date.Before(b.Date)
	}
}
