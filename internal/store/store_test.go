package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthornhill/wayfare/internal/domain"
	"github.com/jthornhill/wayfare/internal/testutil"
)

var testNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func newTestStore(opts Options) *Store {
	if opts.Now == nil {
		opts.Now = func() time.Time { return testNow }
	}
	return New(opts, nil)
}

func TestAdd_StoresCoercedFields(t *testing.T) {
	s := newTestStore(Options{})

	a, err := s.Add(domain.Input{Name: "Flight to Paris", Date: "2025-09-19", Cost: "800"})
	require.NoError(t, err)

	got, err := s.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flight to Paris", got.Name)
	assert.Equal(t, float64(800), got.Cost)
	assert.Equal(t, domain.CategoryTransport, got.Category)
	assert.Equal(t, 1, s.Len())
}

func TestAdd_ValidationError(t *testing.T) {
	s := newTestStore(Options{})

	_, err := s.Add(domain.Input{Name: "", Date: "2025-09-19"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 0, s.Len(), "store state untouched")
}

func TestAdd_SkipValidationAdmitsInvalid(t *testing.T) {
	s := newTestStore(Options{SkipValidation: true})

	_, err := s.Add(domain.Input{Name: ""})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestAdd_Capacity(t *testing.T) {
	s := newTestStore(Options{MaxActivities: 2})

	_, err := s.Add(testutil.NewTestInput("one"))
	require.NoError(t, err)
	_, err = s.Add(testutil.NewTestInput("two"))
	require.NoError(t, err)

	_, err = s.Add(testutil.NewTestInput("three"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 2, s.Len())
}

func TestAdd_EmitsEventsInOrder(t *testing.T) {
	s := newTestStore(Options{})

	var order []string
	s.Emitter().On(EventActivityAdded, func(any) { order = append(order, EventActivityAdded) })
	s.Emitter().On(EventDataUpdated, func(any) { order = append(order, EventDataUpdated) })

	_, err := s.Add(testutil.NewTestInput("one"))
	require.NoError(t, err)
	assert.Equal(t, []string{EventActivityAdded, EventDataUpdated}, order)
}

func TestGetByID_NotFound(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_AppliesPatch(t *testing.T) {
	s := newTestStore(Options{})
	a, err := s.Add(testutil.NewTestInput("Louvre visit"))
	require.NoError(t, err)

	cost := "42"
	updated, err := s.Update(a.ID, domain.Patch{Cost: &cost})
	require.NoError(t, err)
	assert.Equal(t, float64(42), updated.Cost)
}

func TestUpdate_RollsBackOnValidationFailure(t *testing.T) {
	s := newTestStore(Options{})
	a, err := s.Add(testutil.NewTestInput("Louvre visit", testutil.WithCost("20")))
	require.NoError(t, err)

	empty := ""
	_, err = s.Update(a.ID, domain.Patch{Name: &empty})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	got, err := s.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Louvre visit", got.Name, "pre-update value restored")
	assert.Equal(t, float64(20), got.Cost)
}

func TestUpdate_NotFound(t *testing.T) {
	s := newTestStore(Options{})
	name := "x"
	_, err := s.Update("missing", domain.Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_MovesToTrash(t *testing.T) {
	s := newTestStore(Options{})
	a, err := s.Add(testutil.NewTestInput("Ferry"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(a.ID))
	assert.Equal(t, 0, s.Len())

	trash := s.Deleted()
	require.Len(t, trash, 1)
	assert.Equal(t, a.ID, trash[0].Activity.ID)
	assert.Equal(t, 0, trash[0].Position)
	assert.Equal(t, testNow, trash[0].DeletedAt)

	_, err = s.GetByID(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_TrashBounded(t *testing.T) {
	s := newTestStore(Options{TrashSize: 2})

	var ids []string
	for _, name := range []string{"one", "two", "three"} {
		a, err := s.Add(testutil.NewTestInput(name))
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}
	for _, id := range ids {
		require.NoError(t, s.Delete(id))
	}

	trash := s.Deleted()
	require.Len(t, trash, 2, "oldest entry evicted")
	assert.Equal(t, "two", trash[0].Activity.Name)
	assert.Equal(t, "three", trash[1].Activity.Name)
}

func TestRestoreDeleted_RoundTrip(t *testing.T) {
	s := newTestStore(Options{})
	a, err := s.Add(testutil.NewTestInput("Ferry", testutil.WithCost("30")))
	require.NoError(t, err)
	require.NoError(t, s.Delete(a.ID))

	restored, err := s.RestoreDeleted(0)
	require.NoError(t, err)
	assert.Equal(t, a.ID, restored.ID)
	assert.Equal(t, "Ferry", restored.Name)
	assert.Equal(t, float64(30), restored.Cost)
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Deleted())
}

func TestRestoreDeleted_InvalidIndex(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.RestoreDeleted(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = s.RestoreDeleted(-1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestDuplicate_CopiesWithSuffix(t *testing.T) {
	s := newTestStore(Options{})
	a, err := s.Add(testutil.NewTestInput("Ferry", testutil.WithCost("30")))
	require.NoError(t, err)

	dup, err := s.Duplicate(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ferry (Copy)", dup.Name)
	assert.NotEqual(t, a.ID, dup.ID)
	assert.Equal(t, float64(30), dup.Cost)
	assert.Equal(t, 2, s.Len())
}

func TestDuplicate_NotFound(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.Duplicate("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirtyFlag(t *testing.T) {
	s := newTestStore(Options{})
	assert.False(t, s.Dirty())

	_, err := s.Add(testutil.NewTestInput("one"))
	require.NoError(t, err)
	assert.True(t, s.Dirty())

	s.MarkClean()
	assert.False(t, s.Dirty())
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := error(&ValidationError{Reasons: []string{"activity name is required"}})
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, err.Error(), "name is required")
}
