package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jthornhill/wayfare/internal/domain"
)

// runAddForm collects activity fields interactively. Values passed on the
// command line pre-fill the form.
func runAddForm(in domain.Input) (domain.Input, error) {
	categoryOptions := []huh.Option[string]{
		huh.NewOption("auto-detect", ""),
	}
	for _, c := range domain.AllCategories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), string(c)))
	}

	booked := in.Booking == string(domain.BookingBooked)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Description("What are you planning?").
				Value(&in.Name),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&in.Date),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start time").
				Description("HH:MM, optional").
				Value(&in.StartTime),
			huh.NewInput().
				Title("End time").
				Description("HH:MM, optional").
				Value(&in.EndTime),
			huh.NewInput().
				Title("From").
				Value(&in.StartFrom),
			huh.NewInput().
				Title("To").
				Value(&in.ReachTo),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Transport mode").
				Value(&in.TransportMode),
			huh.NewInput().
				Title("Cost").
				Value(&in.Cost),
			huh.NewConfirm().
				Title("Booked?").
				Value(&booked),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&in.Category),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Additional details").
				Lines(3).
				Value(&in.AdditionalDetails),
			huh.NewText().
				Title("Accommodation details").
				Lines(3).
				Value(&in.AccommodationDetails),
		),
	)

	if err := form.Run(); err != nil {
		return in, fmt.Errorf("add form: %w", err)
	}

	if booked {
		in.Booking = string(domain.BookingBooked)
	} else {
		in.Booking = string(domain.BookingNotBooked)
	}
	return in, nil
}
