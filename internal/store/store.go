// Package store implements the in-memory activity collection: CRUD with
// validation, a derived filtered view, aggregate statistics, a bounded
// recently-deleted buffer and snapshot-based backup/restore. Every mutation
// re-derives sort order and the filtered view, invalidates cached
// aggregates and publishes lifecycle events.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/jthornhill/wayfare/internal/domain"
	"github.com/jthornhill/wayfare/internal/events"
)

// Event names published by the store. Events fire after the mutation is
// committed and the store lock is released, so listeners may read back.
const (
	EventActivityAdded   = "activity-added"
	EventActivityUpdated = "activity-updated"
	EventActivityDeleted = "activity-deleted"
	EventDataUpdated     = "data-updated"
	EventFilterChanged   = "filter-changed"
	EventSortChanged     = "sort-changed"
)

// Defaults for Options zero values.
const (
	DefaultMaxActivities   = 1000
	DefaultTrashSize       = 10
	DefaultSnapshotHistory = 10
)

// Options configures store limits and behavior.
type Options struct {
	MaxActivities   int
	TrashSize       int
	SnapshotHistory int
	// SkipValidation disables the business-rule check on Add/Update.
	// Construction-level coercion (cost clamping, date parsing) still runs.
	SkipValidation bool
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// DeletedEntry is one slot of the recently-deleted buffer.
type DeletedEntry struct {
	Activity  *domain.Activity
	DeletedAt time.Time
	Position  int // index in the backing collection at deletion time
}

// Store owns the active collection and all state derived from it. Methods
// are safe for use from multiple goroutines, though the intended model is a
// single caller.
type Store struct {
	mu sync.Mutex

	activities []*domain.Activity
	filtered   []*domain.Activity
	filters    domain.FilterState
	sortCfg    domain.SortConfig

	trash   []DeletedEntry
	history []*SnapshotPayload

	dirty          bool
	statsCache     *Statistics
	breakdownCache map[domain.Category]float64

	opts     Options
	emitter  *events.Emitter
	observer MutationObserver
	now      func() time.Time
}

// New creates an empty store. A nil emitter gets a default one; zero-valued
// limits fall back to the package defaults.
func New(opts Options, emitter *events.Emitter) *Store {
	if opts.MaxActivities <= 0 {
		opts.MaxActivities = DefaultMaxActivities
	}
	if opts.TrashSize <= 0 {
		opts.TrashSize = DefaultTrashSize
	}
	if opts.SnapshotHistory <= 0 {
		opts.SnapshotHistory = DefaultSnapshotHistory
	}
	if emitter == nil {
		emitter = events.New(nil)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		filters:  domain.DefaultFilter(),
		sortCfg:  domain.DefaultSort(),
		opts:     opts,
		emitter:  emitter,
		observer: NoopMutationObserver{},
		now:      now,
	}
}

// SetObserver installs a mutation observer. Nil restores the no-op.
func (s *Store) SetObserver(o MutationObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o == nil {
		o = NoopMutationObserver{}
	}
	s.observer = o
}

// Emitter exposes the store's event emitter for subscribers.
func (s *Store) Emitter() *events.Emitter {
	return s.emitter
}

// Add validates and appends a new activity built from in.
func (s *Store) Add(in domain.Input) (*domain.Activity, error) {
	s.mu.Lock()

	if len(s.activities) >= s.opts.MaxActivities {
		s.mu.Unlock()
		return nil, fmt.Errorf("adding activity: %w", ErrCapacity)
	}

	a := domain.New(in, s.now())
	if !s.opts.SkipValidation {
		if res := a.Validate(); !res.Valid {
			s.mu.Unlock()
			return nil, &ValidationError{Reasons: res.Errors}
		}
	}

	s.activities = append(s.activities, a)
	s.rederive()
	s.observer.ObserveMutation(MutationAdd, a.ID, nil)
	count := len(s.activities)
	s.mu.Unlock()

	s.emitter.Emit(EventActivityAdded, a)
	s.emitter.Emit(EventDataUpdated, count)
	return a, nil
}

// GetByID returns the active activity with the given id.
func (s *Store) GetByID(id string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a := s.lookup(id); a != nil {
		return a, nil
	}
	return nil, fmt.Errorf("activity %s: %w", id, ErrNotFound)
}

// Update applies a partial update to the activity with the given id. When
// validation fails the activity is rolled back to its pre-update field
// values and the error is returned; readers never observe the invalid
// intermediate state.
func (s *Store) Update(id string, p domain.Patch) (*domain.Activity, error) {
	s.mu.Lock()

	a := s.lookup(id)
	if a == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}

	before := *a
	a.Apply(p, s.now())

	if !s.opts.SkipValidation {
		if res := a.Validate(); !res.Valid {
			*a = before
			s.mu.Unlock()
			return nil, &ValidationError{Reasons: res.Errors}
		}
	}

	s.rederive()
	s.observer.ObserveMutation(MutationUpdate, a.ID, nil)
	count := len(s.activities)
	s.mu.Unlock()

	s.emitter.Emit(EventActivityUpdated, a)
	s.emitter.Emit(EventDataUpdated, count)
	return a, nil
}

// Delete moves the activity with the given id into the recently-deleted
// buffer, evicting the oldest entry when the buffer is full.
func (s *Store) Delete(id string) error {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}

	a := s.activities[idx]
	s.activities = append(s.activities[:idx], s.activities[idx+1:]...)

	s.trash = append(s.trash, DeletedEntry{
		Activity:  a,
		DeletedAt: s.now().UTC(),
		Position:  idx,
	})
	if len(s.trash) > s.opts.TrashSize {
		s.trash = s.trash[len(s.trash)-s.opts.TrashSize:]
	}

	s.rederive()
	s.observer.ObserveMutation(MutationDelete, id, nil)
	count := len(s.activities)
	s.mu.Unlock()

	s.emitter.Emit(EventActivityDeleted, a)
	s.emitter.Emit(EventDataUpdated, count)
	return nil
}

// Duplicate clones the activity with the given id, suffixing the name to
// signal the copy, and appends it like Add.
func (s *Store) Duplicate(id string) (*domain.Activity, error) {
	s.mu.Lock()

	src := s.lookup(id)
	if src == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}
	if len(s.activities) >= s.opts.MaxActivities {
		s.mu.Unlock()
		return nil, fmt.Errorf("duplicating activity: %w", ErrCapacity)
	}

	dup := src.Clone(s.now())
	dup.Name = src.Name + " (Copy)"
	s.activities = append(s.activities, dup)

	s.rederive()
	s.observer.ObserveMutation(MutationAdd, dup.ID, nil)
	count := len(s.activities)
	s.mu.Unlock()

	s.emitter.Emit(EventActivityAdded, dup)
	s.emitter.Emit(EventDataUpdated, count)
	return dup, nil
}

// Deleted returns a copy of the recently-deleted buffer, oldest first.
func (s *Store) Deleted() []DeletedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DeletedEntry(nil), s.trash...)
}

// RestoreDeleted removes the entry at the given buffer index and re-inserts
// it as a fresh active activity: same id and field values, refreshed
// UpdatedAt, appended at the end of the collection.
func (s *Store) RestoreDeleted(index int) (*domain.Activity, error) {
	s.mu.Lock()

	if index < 0 || index >= len(s.trash) {
		s.mu.Unlock()
		return nil, fmt.Errorf("deleted buffer index %d: %w", index, ErrInvalidIndex)
	}
	if len(s.activities) >= s.opts.MaxActivities {
		s.mu.Unlock()
		return nil, fmt.Errorf("restoring activity: %w", ErrCapacity)
	}

	entry := s.trash[index]
	s.trash = append(s.trash[:index:index], s.trash[index+1:]...)

	a := entry.Activity
	a.UpdatedAt = s.now().UTC()
	s.activities = append(s.activities, a)

	s.rederive()
	s.observer.ObserveMutation(MutationRestore, a.ID, nil)
	count := len(s.activities)
	s.mu.Unlock()

	s.emitter.Emit(EventActivityAdded, a)
	s.emitter.Emit(EventDataUpdated, count)
	return a, nil
}

// Activities returns the backing collection in current store order. The
// slice is a copy; the elements are live and must not be mutated.
func (s *Store) Activities() []*domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Activity(nil), s.activities...)
}

// Filtered returns the current filtered view. Same sharing rules as
// Activities.
func (s *Store) Filtered() []*domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Activity(nil), s.filtered...)
}

// Len returns the active collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activities)
}

// Dirty reports whether the store has unsaved mutations.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkClean clears the dirty flag, typically after a snapshot hand-off to
// the persistence collaborator.
func (s *Store) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

// rederive is the single write-path hook: every mutation funnels through it
// so sort order, the filtered view and cache invalidation stay consistent.
// Callers must hold s.mu.
func (s *Store) rederive() {
	s.sortLocked()
	s.filterLocked()
	s.dirty = true
	s.statsCache = nil
	s.breakdownCache = nil
}

func (s *Store) lookup(id string) *domain.Activity {
	if i := s.indexOf(id); i >= 0 {
		return s.activities[i]
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, a := range s.activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}
