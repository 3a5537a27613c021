package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthornhill/wayfare/internal/domain"
	"github.com/jthornhill/wayfare/internal/testutil"
)

func TestImport_AddsRows(t *testing.T) {
	s := newTestStore(Options{})

	res, err := s.Import(context.Background(), []domain.Input{
		testutil.NewTestInput("Flight to Paris", testutil.WithCost("800")),
		testutil.NewTestInput("Hotel Le Meurice"),
	}, ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, 2, res.TotalProcessed)
	assert.Equal(t, 2, s.Len())
}

func TestImport_CollectsRowErrors(t *testing.T) {
	s := newTestStore(Options{})

	res, err := s.Import(context.Background(), []domain.Input{
		testutil.NewTestInput("good row"),
		{Name: "", Date: "2025-09-19"},
		testutil.NewTestInput("another good row"),
	}, ImportOptions{})
	require.NoError(t, err, "row failures are not fatal")

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 2, res.Errors[0].Row, "row numbers are 1-based")
	assert.Contains(t, res.Errors[0].Error(), "row 2")
}

func TestImport_SkipValidation(t *testing.T) {
	s := newTestStore(Options{})

	res, err := s.Import(context.Background(), []domain.Input{
		{Name: "", Date: "2025-09-19"},
	}, ImportOptions{SkipValidation: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}

func TestImport_SkipDuplicates(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.Add(testutil.NewTestInput("Flight to Paris", testutil.WithTimes("08:30", "10:45")))
	require.NoError(t, err)

	res, err := s.Import(context.Background(), []domain.Input{
		testutil.NewTestInput("flight to paris", testutil.WithTimes("08:30", "10:45")),
		testutil.NewTestInput("Flight to Paris", testutil.WithTimes("18:00", "20:15")),
		testutil.NewTestInput("Ferry"),
		testutil.NewTestInput("Ferry"),
	}, ImportOptions{SkipDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported, "different start time is not a duplicate")
	assert.Equal(t, 2, res.Skipped, "matches existing entry and earlier row of same import")
	assert.Equal(t, 3, s.Len())
}

func TestImport_SkipDuplicatesIgnoresClockPadding(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.Add(testutil.NewTestInput("Ferry", testutil.WithTimes("09:00", "")))
	require.NoError(t, err)

	res, err := s.Import(context.Background(), []domain.Input{
		testutil.NewTestInput("Ferry", testutil.WithTimes("9:00", "")),
	}, ImportOptions{SkipDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 1, res.Skipped, "9:00 and 09:00 are the same start time")
}

func TestImport_DuplicatesAllowedByDefault(t *testing.T) {
	s := newTestStore(Options{})

	res, err := s.Import(context.Background(), []domain.Input{
		testutil.NewTestInput("Ferry"),
		testutil.NewTestInput("Ferry"),
	}, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
}

func TestImport_RespectsCapacity(t *testing.T) {
	s := newTestStore(Options{MaxActivities: 2})

	res, err := s.Import(context.Background(), []domain.Input{
		testutil.NewTestInput("one"),
		testutil.NewTestInput("two"),
		testutil.NewTestInput("three"),
	}, ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Row)
}

func TestImport_CancelledContextStopsBetweenBatches(t *testing.T) {
	s := newTestStore(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Import(ctx, []domain.Input{testutil.NewTestInput("one")}, ImportOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.TotalProcessed)
	assert.Equal(t, 0, s.Len())
}

func TestImport_SmallBatchesProcessAllRows(t *testing.T) {
	s := newTestStore(Options{})

	rows := make([]domain.Input, 7)
	for i := range rows {
		rows[i] = testutil.NewTestInput("stop " + string(rune('a'+i)))
	}

	res, err := s.Import(context.Background(), rows, ImportOptions{BatchSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Imported)
	assert.Equal(t, 7, res.TotalProcessed)
}

func TestImport_EmitsSingleDataUpdated(t *testing.T) {
	s := newTestStore(Options{})

	events := 0
	s.Emitter().On(EventDataUpdated, func(any) { events++ })

	_, err := s.Import(context.Background(), []domain.Input{
		testutil.NewTestInput("one"),
		testutil.NewTestInput("two"),
		testutil.NewTestInput("three"),
	}, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, events, "bulk import coalesces notifications")
}

func TestImport_NoEventWhenNothingImported(t *testing.T) {
	s := newTestStore(Options{})

	events := 0
	s.Emitter().On(EventDataUpdated, func(any) { events++ })

	_, err := s.Import(context.Background(), []domain.Input{{Name: ""}}, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, events)
}
