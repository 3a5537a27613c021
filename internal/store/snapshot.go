package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jthornhill/wayfare/internal/domain"
)

// SnapshotVersion is the current payload schema version.
const SnapshotVersion = 1

// ActivityRecord is the serialized form of one activity inside a snapshot
// payload. Field names follow the external input record shape.
type ActivityRecord struct {
	ID                   string    `json:"id"`
	Activity             string    `json:"activity"`
	Date                 string    `json:"date"`
	StartTime            string    `json:"startTime,omitempty"`
	EndTime              string    `json:"endTime,omitempty"`
	StartFrom            string    `json:"startFrom,omitempty"`
	ReachTo              string    `json:"reachTo,omitempty"`
	TransportMode        string    `json:"transportMode,omitempty"`
	Booking              string    `json:"booking"`
	Cost                 float64   `json:"cost"`
	AdditionalDetails    string    `json:"additionalDetails,omitempty"`
	AccommodationDetails string    `json:"accommodationDetails,omitempty"`
	Category             string    `json:"category"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// FilterRecord is the serialized filter state.
type FilterRecord struct {
	Search     string   `json:"search,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Transport  string   `json:"transport,omitempty"`
	Booking    []string `json:"booking,omitempty"`
	MinCost    *float64 `json:"minCost,omitempty"`
	MaxCost    *float64 `json:"maxCost,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// SortRecord is the serialized sort configuration.
type SortRecord struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// SnapshotPayload is the point-in-time capture handed to the persistence
// collaborator and kept in the in-store backup history.
type SnapshotPayload struct {
	ID         string           `json:"id"`
	Version    int              `json:"version"`
	Timestamp  time.Time        `json:"timestamp"`
	Activities []ActivityRecord `json:"activities"`
	Filters    FilterRecord     `json:"filters"`
	SortConfig SortRecord       `json:"sortConfig"`
}

// CreateSnapshot captures a deep copy of the active collection plus filter
// and sort state, appends it to the bounded backup history (oldest evicted)
// and returns it.
func (s *Store) CreateSnapshot() *SnapshotPayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.captureLocked()
	s.history = append(s.history, snap)
	if len(s.history) > s.opts.SnapshotHistory {
		s.history = s.history[len(s.history)-s.opts.SnapshotHistory:]
	}
	return snap
}

// Snapshots returns the backup history, oldest first.
func (s *Store) Snapshots() []*SnapshotPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*SnapshotPayload(nil), s.history...)
}

// RestoreSnapshot replaces live state wholesale from the identified history
// entry. A safety snapshot of the pre-restore state is taken first so the
// operation itself is recoverable.
func (s *Store) RestoreSnapshot(id string) error {
	s.mu.Lock()

	var target *SnapshotPayload
	for _, snap := range s.history {
		if snap.ID == id {
			target = snap
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	if err := validatePayload(target); err != nil {
		s.mu.Unlock()
		return err
	}

	safety := s.captureLocked()
	s.history = append(s.history, safety)
	if len(s.history) > s.opts.SnapshotHistory {
		s.history = s.history[len(s.history)-s.opts.SnapshotHistory:]
	}

	s.loadLocked(target)
	s.rederive()
	s.observer.ObserveMutation(MutationRevert, id, map[string]any{"activities": len(s.activities)})
	count := len(s.activities)
	s.mu.Unlock()

	s.emitter.Emit(EventDataUpdated, count)
	return nil
}

// LoadPayload replaces live state from an externally persisted payload,
// typically at startup. The store is left clean: loading is not a mutation.
func (s *Store) LoadPayload(p *SnapshotPayload) error {
	if err := validatePayload(p); err != nil {
		return err
	}

	s.mu.Lock()
	s.loadLocked(p)
	s.sortLocked()
	s.filterLocked()
	s.statsCache = nil
	s.breakdownCache = nil
	s.dirty = false
	count := len(s.activities)
	s.mu.Unlock()

	s.emitter.Emit(EventDataUpdated, count)
	return nil
}

// captureLocked builds a snapshot of current state. Callers must hold s.mu.
func (s *Store) captureLocked() *SnapshotPayload {
	records := make([]ActivityRecord, 0, len(s.activities))
	for _, a := range s.activities {
		records = append(records, toRecord(a))
	}
	return &SnapshotPayload{
		ID:         uuid.New().String(),
		Version:    SnapshotVersion,
		Timestamp:  s.now().UTC(),
		Activities: records,
		Filters:    toFilterRecord(s.filters),
		SortConfig: SortRecord{Field: string(s.sortCfg.Field), Order: string(s.sortCfg.Order)},
	}
}

// loadLocked replaces live state from a validated payload. Callers must
// hold s.mu and re-derive afterwards.
func (s *Store) loadLocked(p *SnapshotPayload) {
	s.activities = make([]*domain.Activity, 0, len(p.Activities))
	for _, rec := range p.Activities {
		s.activities = append(s.activities, fromRecord(rec))
	}
	s.filters = fromFilterRecord(p.Filters)

	s.sortCfg = domain.DefaultSort()
	if domain.ValidSortFields[p.SortConfig.Field] {
		s.sortCfg.Field = domain.SortField(p.SortConfig.Field)
	}
	if domain.SortOrder(p.SortConfig.Order) == domain.SortDesc {
		s.sortCfg.Order = domain.SortDesc
	}
}

func validatePayload(p *SnapshotPayload) error {
	if p == nil {
		return fmt.Errorf("nil payload: %w", ErrCorruptSnapshot)
	}
	if p.ID == "" {
		return fmt.Errorf("missing snapshot id: %w", ErrCorruptSnapshot)
	}
	if p.Version < 1 || p.Version > SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d: %w", p.Version, ErrCorruptSnapshot)
	}
	if p.Timestamp.IsZero() {
		return fmt.Errorf("missing snapshot timestamp: %w", ErrCorruptSnapshot)
	}
	if p.Activities == nil {
		return fmt.Errorf("missing activities: %w", ErrCorruptSnapshot)
	}
	for i, rec := range p.Activities {
		if rec.ID == "" {
			return fmt.Errorf("activity %d missing id: %w", i, ErrCorruptSnapshot)
		}
	}
	return nil
}

func toRecord(a *domain.Activity) ActivityRecord {
	return ActivityRecord{
		ID:                   a.ID,
		Activity:             a.Name,
		Date:                 a.DateString(),
		StartTime:            a.StartTime,
		EndTime:              a.EndTime,
		StartFrom:            a.StartFrom,
		ReachTo:              a.ReachTo,
		TransportMode:        a.TransportMode,
		Booking:              string(a.Booking),
		Cost:                 a.Cost,
		AdditionalDetails:    a.AdditionalDetails,
		AccommodationDetails: a.AccommodationDetails,
		Category:             string(a.Category),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func fromRecord(rec ActivityRecord) *domain.Activity {
	a := domain.New(domain.Input{
		Name:                 rec.Activity,
		Date:                 rec.Date,
		StartTime:            rec.StartTime,
		EndTime:              rec.EndTime,
		StartFrom:            rec.StartFrom,
		ReachTo:              rec.ReachTo,
		TransportMode:        rec.TransportMode,
		Booking:              rec.Booking,
		Cost:                 fmt.Sprintf("%g", rec.Cost),
		AdditionalDetails:    rec.AdditionalDetails,
		AccommodationDetails: rec.AccommodationDetails,
		Category:             rec.Category,
	}, rec.CreatedAt)
	// Restore identity and timestamps captured at snapshot time.
	a.ID = rec.ID
	a.CreatedAt = rec.CreatedAt
	a.UpdatedAt = rec.UpdatedAt
	return a
}

func toFilterRecord(f domain.FilterState) FilterRecord {
	rec := FilterRecord{
		Search:    f.Search,
		Transport: f.Transport,
	}
	if f.MinCost != nil {
		v := *f.MinCost
		rec.MinCost = &v
	}
	if f.MaxCost != nil {
		v := *f.MaxCost
		rec.MaxCost = &v
	}
	if f.StartDate != nil {
		rec.StartDate = f.StartDate.Format(domain.DateLayout)
	}
	if f.EndDate != nil {
		rec.EndDate = f.EndDate.Format(domain.DateLayout)
	}
	for _, b := range f.Booking {
		rec.Booking = append(rec.Booking, string(b))
	}
	for _, c := range f.Categories {
		rec.Categories = append(rec.Categories, string(c))
	}
	return rec
}

func fromFilterRecord(rec FilterRecord) domain.FilterState {
	f := domain.DefaultFilter()
	f.Search = rec.Search
	f.Transport = rec.Transport
	f.StartDate = parseFilterDate(rec.StartDate)
	f.EndDate = parseFilterDate(rec.EndDate)
	if rec.MinCost != nil && *rec.MinCost >= 0 {
		v := *rec.MinCost
		f.MinCost = &v
	}
	if rec.MaxCost != nil && *rec.MaxCost >= 0 {
		v := *rec.MaxCost
		f.MaxCost = &v
	}
	if len(rec.Booking) > 0 {
		f.Booking = normalizeBookingSet(rec.Booking)
	}
	f.Categories = normalizeCategorySet(rec.Categories)
	return f
}
