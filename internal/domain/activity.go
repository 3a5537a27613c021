package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// Activity is one itinerary entry: a flight, a hotel stay, a museum visit.
type Activity struct {
	ID                   string
	Name                 string
	Date                 time.Time // day resolution; zero when the input failed to parse
	StartTime            string    // "HH:MM", optional
	EndTime              string    // "HH:MM", optional
	StartFrom            string
	ReachTo              string
	TransportMode        string
	Booking              BookingStatus
	Cost                 float64 // always >= 0
	AdditionalDetails    string
	AccommodationDetails string
	Category             Category

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input is the construction record for an activity. All fields are plain
// strings so that CLI flags and CSV cells feed in unchanged; parsing and
// clamping happen in New.
type Input struct {
	Name                 string
	Date                 string
	StartTime            string
	EndTime              string
	StartFrom            string
	ReachTo              string
	TransportMode        string
	Booking              string
	Cost                 string
	AdditionalDetails    string
	AccommodationDetails string
	Category             string // explicit override; inferred when empty
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name                 *string
	Date                 *string
	StartTime            *string
	EndTime              *string
	StartFrom            *string
	ReachTo              *string
	TransportMode        *string
	Booking              *string
	Cost                 *string
	AdditionalDetails    *string
	AccommodationDetails *string
	Category             *string
}

// New constructs an activity from an input record. It never fails: invalid
// cost clamps to 0, an invalid date stays zero (flagged later by Validate),
// and the category is inferred unless the input carries a valid one.
func New(in Input, now time.Time) *Activity {
	a := &Activity{
		ID:                   uuid.New().String(),
		Name:                 strings.TrimSpace(in.Name),
		StartTime:            normalizeClock(in.StartTime),
		EndTime:              normalizeClock(in.EndTime),
		StartFrom:            strings.TrimSpace(in.StartFrom),
		ReachTo:              strings.TrimSpace(in.ReachTo),
		TransportMode:        strings.TrimSpace(in.TransportMode),
		Booking:              NormalizeBooking(in.Booking),
		Cost:                 ParseCost(in.Cost),
		AdditionalDetails:    strings.TrimSpace(in.AdditionalDetails),
		AccommodationDetails: strings.TrimSpace(in.AccommodationDetails),
		CreatedAt:            now.UTC(),
		UpdatedAt:            now.UTC(),
	}
	if d, err := time.Parse(DateLayout, strings.TrimSpace(in.Date)); err == nil {
		a.Date = d
	}
	if ValidCategories[strings.ToLower(in.Category)] {
		a.Category = Category(strings.ToLower(in.Category))
	} else {
		a.Category = InferCategory(a.Name, a.TransportMode, a.AccommodationDetails)
	}
	return a
}

// Apply merges a patch into the activity in place. The category is
// re-inferred unless the patch supplies a valid one explicitly. Callers
// needing rollback must copy the activity beforehand.
func (a *Activity) Apply(p Patch, now time.Time) {
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Date != nil {
		if d, err := time.Parse(DateLayout, strings.TrimSpace(*p.Date)); err == nil {
			a.Date = d
		} else {
			a.Date = time.Time{}
		}
	}
	if p.StartTime != nil {
		a.StartTime = normalizeClock(*p.StartTime)
	}
	if p.EndTime != nil {
		a.EndTime = normalizeClock(*p.EndTime)
	}
	if p.StartFrom != nil {
		a.StartFrom = strings.TrimSpace(*p.StartFrom)
	}
	if p.ReachTo != nil {
		a.ReachTo = strings.TrimSpace(*p.ReachTo)
	}
	if p.TransportMode != nil {
		a.TransportMode = strings.TrimSpace(*p.TransportMode)
	}
	if p.Booking != nil {
		a.Booking = NormalizeBooking(*p.Booking)
	}
	if p.Cost != nil {
		a.Cost = ParseCost(*p.Cost)
	}
	if p.AdditionalDetails != nil {
		a.AdditionalDetails = strings.TrimSpace(*p.AdditionalDetails)
	}
	if p.AccommodationDetails != nil {
		a.AccommodationDetails = strings.TrimSpace(*p.AccommodationDetails)
	}

	if p.Category != nil && ValidCategories[strings.ToLower(*p.Category)] {
		a.Category = Category(strings.ToLower(*p.Category))
	} else {
		a.Category = InferCategory(a.Name, a.TransportMode, a.AccommodationDetails)
	}

	a.UpdatedAt = now.UTC()
}

// Clone returns a value copy with a new ID and fresh timestamps.
func (a *Activity) Clone(now time.Time) *Activity {
	dup := *a
	dup.ID = uuid.New().String()
	dup.CreatedAt = now.UTC()
	dup.UpdatedAt = now.UTC()
	return &dup
}

// DateString renders the date as YYYY-MM-DD, or "" when unset.
func (a *Activity) DateString() string {
	if a.Date.IsZero() {
		return ""
	}
	return a.Date.Format(DateLayout)
}

// DurationMinutes returns the span between start and end time in minutes.
// The second return is false when either time is missing, malformed, or
// the end is earlier than the start. Equal times yield 0, true.
func (a *Activity) DurationMinutes() (int, bool) {
	start, okS := parseClock(a.StartTime)
	end, okE := parseClock(a.EndTime)
	if !okS || !okE || end < start {
		return 0, false
	}
	return end - start, true
}

// IsBooked reports whether the reservation is confirmed.
func (a *Activity) IsBooked() bool {
	return a.Booking == BookingBooked
}

// IsHighCost reports whether the cost meets or exceeds the threshold.
func (a *Activity) IsHighCost(threshold float64) bool {
	return a.Cost >= threshold
}

// IsToday reports whether the activity falls on the same calendar day as now.
func (a *Activity) IsToday(now time.Time) bool {
	if a.Date.IsZero() {
		return false
	}
	return a.Date.Format(DateLayout) == now.Format(DateLayout)
}

// IsUpcoming reports whether the activity falls within withinDays days from
// now, today included.
func (a *Activity) IsUpcoming(now time.Time, withinDays int) bool {
	if a.Date.IsZero() {
		return false
	}
	today := truncateDay(now)
	limit := today.AddDate(0, 0, withinDays)
	d := truncateDay(a.Date)
	return !d.Before(today) && !d.After(limit)
}

// IsPast reports whether the activity's day is strictly before today.
func (a *Activity) IsPast(now time.Time) bool {
	if a.Date.IsZero() {
		return false
	}
	return truncateDay(a.Date).Before(truncateDay(now))
}

// Matches performs a case-insensitive substring search over the activity's
// text fields. An empty term always matches.
func (a *Activity) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{
		a.Name,
		a.StartFrom,
		a.ReachTo,
		a.TransportMode,
		a.AdditionalDetails,
		a.AccommodationDetails,
		string(a.Category),
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ParseCost parses a cost string, stripping whitespace and a leading
// currency marker. Unparseable or negative input coerces to 0.
func ParseCost(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// normalizeClock canonicalizes a clock string to zero-padded "HH:MM",
// returning "" when malformed. The padded form makes lexicographic order
// chronological and keeps "9:00" and "09:00" from counting as distinct.
func normalizeClock(s string) string {
	mins, ok := parseClock(strings.TrimSpace(s))
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
