package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jthornhill/wayfare/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryColor returns the lipgloss style for the given category.
func CategoryColor(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryTransport:
		return StyleBlue
	case domain.CategoryAccommodation:
		return StylePurple
	case domain.CategorySightseeing:
		return StyleGreen
	case domain.CategoryDining:
		return StyleYellow
	default:
		return StyleDim
	}
}

// CategoryLabel renders a colored category tag.
func CategoryLabel(c domain.Category) string {
	return CategoryColor(c).Render(string(c))
}

// BookingIndicator returns a colored booking state string.
func BookingIndicator(b domain.BookingStatus) string {
	if b == domain.BookingBooked {
		return StyleGreen.Render("● booked")
	}
	return StyleYellow.Render("○ not booked")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Cost renders a money amount, highlighting values at or above threshold.
func Cost(amount, threshold float64) string {
	s := fmt.Sprintf("%.2f", amount)
	if threshold > 0 && amount >= threshold {
		return StyleRed.Render(s)
	}
	return StyleFg.Render(s)
}
