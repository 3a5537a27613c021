package domain

import (
	"strconv"
	"strings"
)

// CSVHeader is the canonical export column order.
var CSVHeader = []string{
	"Activity", "Date", "Start Time", "End Time", "From", "To",
	"Transport Mode", "Booking", "Cost", "Additional Details",
	"Accommodation Details",
}

// csvAliases maps each canonical header to its camel-case field-name
// equivalent accepted on import.
var csvAliases = map[string]string{
	"Activity":              "activity",
	"Date":                  "date",
	"Start Time":            "startTime",
	"End Time":              "endTime",
	"From":                  "startFrom",
	"To":                    "reachTo",
	"Transport Mode":        "transportMode",
	"Booking":               "booking",
	"Cost":                  "cost",
	"Additional Details":    "additionalDetails",
	"Accommodation Details": "accommodationDetails",
}

// ToCSVRecord renders the activity as one export row, ordered per CSVHeader.
func (a *Activity) ToCSVRecord() []string {
	return []string{
		a.Name,
		a.DateString(),
		a.StartTime,
		a.EndTime,
		a.StartFrom,
		a.ReachTo,
		a.TransportMode,
		string(a.Booking),
		strconv.FormatFloat(a.Cost, 'f', -1, 64),
		a.AdditionalDetails,
		a.AccommodationDetails,
	}
}

// InputFromCSVRow builds a construction record from a header-keyed row.
// Both canonical header names ("Start Time") and field names ("startTime")
// are accepted, case-insensitively. The booking value is uppercased by
// NormalizeBooking during construction.
func InputFromCSVRow(row map[string]string) Input {
	get := func(canonical string) string {
		// Exact keys first so a row carrying both forms resolves the same
		// way every time, then case-insensitive fallbacks in the same order.
		if v, ok := row[canonical]; ok {
			return v
		}
		alias := csvAliases[canonical]
		if v, ok := row[alias]; ok {
			return v
		}
		for k, v := range row {
			if strings.EqualFold(strings.TrimSpace(k), canonical) {
				return v
			}
		}
		for k, v := range row {
			if strings.EqualFold(strings.TrimSpace(k), alias) {
				return v
			}
		}
		return ""
	}
	return Input{
		Name:                 get("Activity"),
		Date:                 get("Date"),
		StartTime:            get("Start Time"),
		EndTime:              get("End Time"),
		StartFrom:            get("From"),
		ReachTo:              get("To"),
		TransportMode:        get("Transport Mode"),
		Booking:              get("Booking"),
		Cost:                 get("Cost"),
		AdditionalDetails:    get("Additional Details"),
		AccommodationDetails: get("Accommodation Details"),
	}
}
