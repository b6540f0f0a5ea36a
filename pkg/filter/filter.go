// Package filter narrows record sets to the trips matching a month and day of week.
package filter

import (
	"github.com/aretw0/bikeshare/pkg/domain"
)

// Apply returns the trips of rs whose start time matches month and day.
// Predicates are AND-combined; MonthAll and DayAll disable theirs.
// When both are disabled rs itself is returned. Otherwise a new set is built
// in source order and rs is left untouched.
func Apply(rs *domain.RecordSet, month domain.Month, day domain.Weekday) *domain.RecordSet {
	if month == domain.MonthAll && day == domain.DayAll {
		return rs
	}
	if rs == nil {
		return nil
	}

	trips := make([]domain.Trip, 0, len(rs.Trips))
	for _, trip := range rs.Trips {
		if Match(trip, month, day) {
			trips = append(trips, trip)
		}
	}
	return rs.Derive(trips)
}

// ApplySpec applies the month and day of spec to rs.
func ApplySpec(rs *domain.RecordSet, spec domain.FilterSpec) *domain.RecordSet {
	return Apply(rs, spec.Month, spec.Day)
}

// Match reports whether a single trip passes both predicates.
// A trip without a start time only passes when both are disabled.
func Match(trip domain.Trip, month domain.Month, day domain.Weekday) bool {
	if month == domain.MonthAll && day == domain.DayAll {
		return true
	}
	if !trip.HasStartTime() {
		return false
	}
	if month != domain.MonthAll && int(trip.StartTime.Month()) != int(month) {
		return false
	}
	if day != domain.DayAll && domain.WeekdayOf(trip.StartTime) != day {
		return false
	}
	return true
}
