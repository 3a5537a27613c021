package store

import (
	"math"
	"strings"
	"time"

	"github.com/jthornhill/wayfare/internal/domain"
)

// upcomingWindowDays is the look-ahead window for the upcoming count.
const upcomingWindowDays = 7

// Statistics aggregates over the full active collection, not the filtered
// view.
type Statistics struct {
	Total             int
	TotalCost         float64
	AverageCost       float64
	MinCost           float64 // 0 when the collection is empty
	MaxCost           float64
	ByTransport       map[string]int
	ByCategory        map[domain.Category]int
	ByBooking         map[domain.BookingStatus]int
	BookedPercent     int // rounded
	Upcoming          int // within upcomingWindowDays from now
	DateSpanDays      int // inclusive span between earliest and latest date
	DistinctLocations int // over combined StartFrom/ReachTo values
}

// Statistics returns the aggregate view, computing it on first call after a
// mutation and serving the cached value until the next one. A panic during
// computation degrades to zeroed statistics rather than propagating. The
// returned maps are copies; mutating them does not touch the cache.
func (s *Store) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.statsCache == nil {
		stats := s.computeStatistics()
		s.statsCache = &stats
	}

	out := *s.statsCache
	out.ByTransport = copyCounts(s.statsCache.ByTransport)
	out.ByCategory = copyCounts(s.statsCache.ByCategory)
	out.ByBooking = copyCounts(s.statsCache.ByBooking)
	return out
}

func copyCounts[K comparable](m map[K]int) map[K]int {
	out := make(map[K]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CostBreakdown returns cost summed per category over the full active
// collection, cached like Statistics.
func (s *Store) CostBreakdown() map[domain.Category]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.breakdownCache == nil {
		breakdown := make(map[domain.Category]float64)
		for _, a := range s.activities {
			breakdown[a.Category] += a.Cost
		}
		s.breakdownCache = breakdown
	}
	out := make(map[domain.Category]float64, len(s.breakdownCache))
	for k, v := range s.breakdownCache {
		out[k] = v
	}
	return out
}

func (s *Store) computeStatistics() (stats Statistics) {
	defer func() {
		if rec := recover(); rec != nil {
			stats = emptyStatistics()
		}
	}()

	stats = emptyStatistics()
	stats.Total = len(s.activities)
	if stats.Total == 0 {
		return stats
	}

	now := s.now()
	booked := 0
	locations := map[string]bool{}
	var earliest, latest time.Time
	stats.MinCost = math.MaxFloat64

	for _, a := range s.activities {
		stats.TotalCost += a.Cost
		if a.Cost < stats.MinCost {
			stats.MinCost = a.Cost
		}
		if a.Cost > stats.MaxCost {
			stats.MaxCost = a.Cost
		}

		if a.TransportMode != "" {
			stats.ByTransport[a.TransportMode]++
		}
		stats.ByCategory[a.Category]++
		stats.ByBooking[a.Booking]++
		if a.IsBooked() {
			booked++
		}
		if a.IsUpcoming(now, upcomingWindowDays) {
			stats.Upcoming++
		}

		for _, loc := range []string{a.StartFrom, a.ReachTo} {
			if loc = strings.TrimSpace(loc); loc != "" {
				locations[strings.ToLower(loc)] = true
			}
		}

		if !a.Date.IsZero() {
			if earliest.IsZero() || a.Date.Before(earliest) {
				earliest = a.Date
			}
			if latest.IsZero() || a.Date.After(latest) {
				latest = a.Date
			}
		}
	}

	stats.AverageCost = stats.TotalCost / float64(stats.Total)
	stats.BookedPercent = int(math.Round(float64(booked) / float64(stats.Total) * 100))
	stats.DistinctLocations = len(locations)
	if !earliest.IsZero() {
		stats.DateSpanDays = int(latest.Sub(earliest).Hours()/24) + 1
	}
	return stats
}

func emptyStatistics() Statistics {
	return Statistics{
		ByTransport: make(map[string]int),
		ByCategory:  make(map[domain.Category]int),
		ByBooking:   make(map[domain.BookingStatus]int),
	}
}
