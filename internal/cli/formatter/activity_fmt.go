package formatter

import (
	"fmt"
	"strings"

	"github.com/jthornhill/wayfare/internal/domain"
	"github.com/jthornhill/wayfare/internal/store"
)

// ActivityTable renders the given activities as an aligned table. The id
// column shows the first eight characters; full ids are accepted anywhere
// an id is expected.
func ActivityTable(activities []*domain.Activity, highCost float64) string {
	if len(activities) == 0 {
		return Dim("no activities") + "\n"
	}

	headers := []string{"ID", "Activity", "Date", "Time", "Route", "Category", "Booking", "Cost"}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			Dim(shortID(a.ID)),
			a.Name,
			a.DateString(),
			timeRange(a),
			route(a),
			CategoryLabel(a.Category),
			BookingIndicator(a.Booking),
			Cost(a.Cost, highCost),
		})
	}
	return RenderTable(headers, rows)
}

// ActivityDetail renders one activity as a labeled block.
func ActivityDetail(a *domain.Activity, highCost float64) string {
	var b strings.Builder
	b.WriteString(Header(a.Name) + "\n")

	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s %s\n", Dim(label+":"), value)
		}
	}

	write("ID", a.ID)
	write("Date", a.DateString())
	write("Time", timeRange(a))
	if mins, ok := a.DurationMinutes(); ok {
		write("Duration", fmt.Sprintf("%dh%02dm", mins/60, mins%60))
	}
	write("Route", route(a))
	write("Transport", a.TransportMode)
	write("Category", CategoryLabel(a.Category))
	write("Booking", BookingIndicator(a.Booking))
	write("Cost", Cost(a.Cost, highCost))
	write("Details", a.AdditionalDetails)
	write("Accommodation", a.AccommodationDetails)
	write("Created", a.CreatedAt.Format("2006-01-02 15:04"))
	write("Updated", a.UpdatedAt.Format("2006-01-02 15:04"))
	return b.String()
}

// DeletedTable renders the recently-deleted buffer with restore indexes.
func DeletedTable(entries []store.DeletedEntry) string {
	if len(entries) == 0 {
		return Dim("trash is empty") + "\n"
	}

	headers := []string{"#", "Activity", "Date", "Deleted At"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			e.Activity.Name,
			e.Activity.DateString(),
			e.DeletedAt.Format("2006-01-02 15:04"),
		})
	}
	return RenderTable(headers, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func timeRange(a *domain.Activity) string {
	switch {
	case a.StartTime != "" && a.EndTime != "":
		return a.StartTime + "–" + a.EndTime
	case a.StartTime != "":
		return a.StartTime
	default:
		return ""
	}
}

func route(a *domain.Activity) string {
	switch {
	case a.StartFrom != "" && a.ReachTo != "":
		return a.StartFrom + " → " + a.ReachTo
	case a.StartFrom != "":
		return a.StartFrom
	case a.ReachTo != "":
		return a.ReachTo
	default:
		return ""
	}
}
