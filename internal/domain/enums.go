package domain

import "strings"

type Category string

const (
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategorySightseeing   Category = "sightseeing"
	CategoryDining        Category = "dining"
	CategoryOther         Category = "other"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"transport": true, "accommodation": true, "sightseeing": true,
	"dining": true, "other": true,
}

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryTransport,
	CategoryAccommodation,
	CategorySightseeing,
	CategoryDining,
	CategoryOther,
}

type BookingStatus string

const (
	BookingBooked    BookingStatus = "TRUE"
	BookingNotBooked BookingStatus = "FALSE"
)

// AllBookingStatuses lists both booking states.
var AllBookingStatuses = []BookingStatus{BookingBooked, BookingNotBooked}

// NormalizeBooking uppercases the input and coerces anything that is not
// an affirmative value to BookingNotBooked.
func NormalizeBooking(s string) BookingStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE", "YES", "BOOKED", "1":
		return BookingBooked
	default:
		return BookingNotBooked
	}
}

type SortField string

const (
	SortByDate      SortField = "date"
	SortByName      SortField = "activity"
	SortByCost      SortField = "cost"
	SortByStartTime SortField = "startTime"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
)

// ValidSortFields is the canonical set of accepted sort field strings.
var ValidSortFields = map[string]bool{
	"date": true, "activity": true, "cost": true,
	"startTime": true, "createdAt": true, "updatedAt": true,
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
