package testutil

import (
	"github.com/jthornhill/wayfare/internal/domain"
)

// InputOption mutates a fixture construction record.
type InputOption func(*domain.Input)

func WithDate(date string) InputOption {
	return func(in *domain.Input) { in.Date = date }
}

func WithCost(cost string) InputOption {
	return func(in *domain.Input) { in.Cost = cost }
}

func WithTimes(start, end string) InputOption {
	return func(in *domain.Input) {
		in.StartTime = start
		in.EndTime = end
	}
}

func WithRoute(from, to string) InputOption {
	return func(in *domain.Input) {
		in.StartFrom = from
		in.ReachTo = to
	}
}

func WithTransport(mode string) InputOption {
	return func(in *domain.Input) { in.TransportMode = mode }
}

func WithBooking(booking string) InputOption {
	return func(in *domain.Input) { in.Booking = booking }
}

func WithCategory(category string) InputOption {
	return func(in *domain.Input) { in.Category = category }
}

// NewTestInput builds a valid construction record with sensible defaults.
func NewTestInput(name string, opts ...InputOption) domain.Input {
	in := domain.Input{
		Name:    name,
		Date:    "2025-09-19",
		Booking: "FALSE",
		Cost:    "100",
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
