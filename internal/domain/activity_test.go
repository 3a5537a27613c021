package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func TestNew_FillsFieldsAndDefaults(t *testing.T) {
	a := New(Input{
		Name:      "  Flight to Paris  ",
		Date:      "2025-09-19",
		StartTime: "08:30",
		EndTime:   "10:45",
		StartFrom: "Berlin",
		ReachTo:   "Paris",
		Booking:   "true",
		Cost:      "800",
	}, testNow)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Flight to Paris", a.Name)
	assert.Equal(t, "2025-09-19", a.DateString())
	assert.Equal(t, BookingBooked, a.Booking)
	assert.Equal(t, float64(800), a.Cost)
	assert.Equal(t, CategoryTransport, a.Category)
	assert.Equal(t, testNow, a.CreatedAt)
	assert.Equal(t, testNow, a.UpdatedAt)
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(Input{Name: "one"}, testNow)
	b := New(Input{Name: "one"}, testNow)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNew_CostCoercion(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"800", 800},
		{"12.50", 12.5},
		{"$1,200", 1200},
		{"-50", 0},
		{"abc", 0},
		{"", 0},
	}
	for _, tc := range cases {
		a := New(Input{Name: "x", Cost: tc.input}, testNow)
		assert.Equal(t, tc.want, a.Cost, "cost=%q", tc.input)
	}
}

func TestNew_InvalidDateStaysZero(t *testing.T) {
	a := New(Input{Name: "x", Date: "19/09/2025"}, testNow)
	assert.True(t, a.Date.IsZero())
	assert.Equal(t, "", a.DateString())
}

func TestNew_ExplicitCategoryWins(t *testing.T) {
	a := New(Input{Name: "Flight to Paris", Category: "dining"}, testNow)
	assert.Equal(t, CategoryDining, a.Category)
}

func TestNew_UnknownCategoryFallsBackToInference(t *testing.T) {
	a := New(Input{Name: "Flight to Paris", Category: "bogus"}, testNow)
	assert.Equal(t, CategoryTransport, a.Category)
}

func TestNew_MalformedTimesDropped(t *testing.T) {
	a := New(Input{Name: "x", StartTime: "25:00", EndTime: "9am"}, testNow)
	assert.Equal(t, "", a.StartTime)
	assert.Equal(t, "", a.EndTime)
}

func TestNew_ZeroPadsClockTimes(t *testing.T) {
	a := New(Input{Name: "x", StartTime: "9:00", EndTime: "9:7"}, testNow)
	assert.Equal(t, "09:00", a.StartTime)
	assert.Equal(t, "09:07", a.EndTime)

	b := New(Input{Name: "x", StartTime: "09:00"}, testNow)
	assert.Equal(t, a.StartTime, b.StartTime, "padded and unpadded input converge")
}

func TestApply_MergesOnlySetFields(t *testing.T) {
	a := New(Input{Name: "Louvre visit", Date: "2025-09-20", Cost: "20"}, testNow)

	later := testNow.Add(time.Hour)
	cost := "25"
	a.Apply(Patch{Cost: &cost}, later)

	assert.Equal(t, "Louvre visit", a.Name)
	assert.Equal(t, "2025-09-20", a.DateString())
	assert.Equal(t, float64(25), a.Cost)
	assert.Equal(t, later, a.UpdatedAt)
	assert.Equal(t, testNow, a.CreatedAt, "CreatedAt is immutable")
}

func TestApply_RecomputesCategory(t *testing.T) {
	a := New(Input{Name: "Morning walk"}, testNow)
	require.Equal(t, CategoryOther, a.Category)

	name := "Dinner at Le Chat"
	a.Apply(Patch{Name: &name}, testNow)
	assert.Equal(t, CategoryDining, a.Category)
}

func TestApply_ExplicitCategorySticksForThisUpdate(t *testing.T) {
	a := New(Input{Name: "Morning walk"}, testNow)

	cat := "sightseeing"
	a.Apply(Patch{Category: &cat}, testNow)
	assert.Equal(t, CategorySightseeing, a.Category)

	// A later update without an explicit category re-infers.
	cost := "10"
	a.Apply(Patch{Cost: &cost}, testNow)
	assert.Equal(t, CategoryOther, a.Category)
}

func TestApply_NegativeCostClampsToZero(t *testing.T) {
	a := New(Input{Name: "x", Cost: "100"}, testNow)
	cost := "-5"
	a.Apply(Patch{Cost: &cost}, testNow)
	assert.Equal(t, float64(0), a.Cost)
}

func TestClone_NewIdentitySameValues(t *testing.T) {
	a := New(Input{Name: "Ferry", Date: "2025-09-21", Cost: "30"}, testNow)
	later := testNow.Add(time.Minute)

	dup := a.Clone(later)
	assert.NotEqual(t, a.ID, dup.ID)
	assert.Equal(t, a.Name, dup.Name)
	assert.Equal(t, a.Cost, dup.Cost)
	assert.Equal(t, a.Date, dup.Date)
	assert.Equal(t, later, dup.CreatedAt)
	assert.Equal(t, later, dup.UpdatedAt)
}

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		name   string
		start  string
		end    string
		want   int
		wantOK bool
	}{
		{"normal span", "08:30", "10:45", 135, true},
		{"equal times yield zero", "09:00", "09:00", 0, true},
		{"end before start", "10:00", "09:00", 0, false},
		{"missing start", "", "10:00", 0, false},
		{"missing end", "09:00", "", 0, false},
		{"both missing", "", "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Activity{StartTime: tc.start, EndTime: tc.end}
			got, ok := a.DurationMinutes()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDatePredicates(t *testing.T) {
	today := New(Input{Name: "x", Date: "2025-09-15"}, testNow)
	tomorrow := New(Input{Name: "x", Date: "2025-09-16"}, testNow)
	nextMonth := New(Input{Name: "x", Date: "2025-10-15"}, testNow)
	yesterday := New(Input{Name: "x", Date: "2025-09-14"}, testNow)
	undated := New(Input{Name: "x"}, testNow)

	assert.True(t, today.IsToday(testNow))
	assert.False(t, tomorrow.IsToday(testNow))

	assert.True(t, today.IsUpcoming(testNow, 7))
	assert.True(t, tomorrow.IsUpcoming(testNow, 7))
	assert.False(t, nextMonth.IsUpcoming(testNow, 7))
	assert.False(t, yesterday.IsUpcoming(testNow, 7))

	assert.True(t, yesterday.IsPast(testNow))
	assert.False(t, today.IsPast(testNow))

	assert.False(t, undated.IsToday(testNow))
	assert.False(t, undated.IsUpcoming(testNow, 7))
	assert.False(t, undated.IsPast(testNow))
}

func TestIsHighCost(t *testing.T) {
	a := &Activity{Cost: 500}
	assert.True(t, a.IsHighCost(500))
	assert.True(t, a.IsHighCost(100))
	assert.False(t, a.IsHighCost(501))
}

func TestMatches(t *testing.T) {
	a := New(Input{
		Name:              "Flight to Paris",
		StartFrom:         "Berlin Hbf",
		ReachTo:           "CDG",
		TransportMode:     "plane",
		AdditionalDetails: "seat 12A",
	}, testNow)

	assert.True(t, a.Matches(""))
	assert.True(t, a.Matches("  "))
	assert.True(t, a.Matches("paris"))
	assert.True(t, a.Matches("BERLIN"))
	assert.True(t, a.Matches("cdg"))
	assert.True(t, a.Matches("12a"))
	assert.True(t, a.Matches("transport"), "category text is searchable")
	assert.False(t, a.Matches("tokyo"))
}
