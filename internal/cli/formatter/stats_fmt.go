package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jthornhill/wayfare/internal/domain"
	"github.com/jthornhill/wayfare/internal/store"
)

// StatsSummary renders the aggregate statistics block.
func StatsSummary(stats store.Statistics) string {
	var b strings.Builder
	b.WriteString(Header("Trip Statistics") + "\n")

	if stats.Total == 0 {
		b.WriteString(Dim("no activities yet") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s %d (%d upcoming this week)\n",
		Dim("Activities:"), stats.Total, stats.Upcoming)
	fmt.Fprintf(&b, "%s %.2f total, %.2f avg, %.2f–%.2f range\n",
		Dim("Cost:"), stats.TotalCost, stats.AverageCost, stats.MinCost, stats.MaxCost)
	fmt.Fprintf(&b, "%s %d%% booked\n", Dim("Booking:"), stats.BookedPercent)
	fmt.Fprintf(&b, "%s %d days\n", Dim("Date span:"), stats.DateSpanDays)
	fmt.Fprintf(&b, "%s %d\n", Dim("Locations:"), stats.DistinctLocations)

	if len(stats.ByCategory) > 0 {
		b.WriteString("\n" + Bold("By category") + "\n")
		for _, c := range domain.AllCategories {
			if n := stats.ByCategory[c]; n > 0 {
				fmt.Fprintf(&b, "  %s %d\n", CategoryLabel(c), n)
			}
		}
	}

	if len(stats.ByTransport) > 0 {
		b.WriteString("\n" + Bold("By transport") + "\n")
		modes := make([]string, 0, len(stats.ByTransport))
		for m := range stats.ByTransport {
			modes = append(modes, m)
		}
		sort.Strings(modes)
		for _, m := range modes {
			fmt.Fprintf(&b, "  %s %d\n", StyleBlue.Render(m), stats.ByTransport[m])
		}
	}

	return b.String()
}

// CostBreakdown renders per-category cost totals with proportional bars.
func CostBreakdown(breakdown map[domain.Category]float64) string {
	var b strings.Builder
	b.WriteString(Header("Cost Breakdown") + "\n")

	var total float64
	for _, v := range breakdown {
		total += v
	}
	if total == 0 {
		b.WriteString(Dim("no costs recorded") + "\n")
		return b.String()
	}

	const barWidth = 30
	for _, c := range domain.AllCategories {
		v := breakdown[c]
		if v == 0 {
			continue
		}
		filled := int(v / total * barWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(&b, "%-14s %s %.2f (%.0f%%)\n",
			CategoryLabel(c), CategoryColor(c).Render(bar), v, v/total*100)
	}
	return b.String()
}

// ImportSummary renders a bulk import result, listing per-row failures.
func ImportSummary(res *store.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported %d of %d rows (%d skipped)\n",
		res.Imported, res.TotalProcessed, res.Skipped)
	for _, rowErr := range res.Errors {
		fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(rowErr.Error()))
	}
	return b.String()
}
