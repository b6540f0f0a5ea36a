package stats

import (
	"fmt"
	"time"

	"github.com/aretw0/bikeshare/pkg/domain"
)

// TimeAggregator reports the most frequent month, weekday and start hour.
// Trips without a start time are left out. A most common month past June falls back.
type TimeAggregator struct{}

func (TimeAggregator) Name() string  { return "time" }
func (TimeAggregator) Title() string { return "Calculating The Most Frequent Times of Travel..." }

func (TimeAggregator) Compute(rs *domain.RecordSet) ([]Line, error) {
	n := rs.Len()
	months := make([]int, 0, n)
	days := make([]int, 0, n)
	hours := make([]int, 0, n)
	for _, trip := range rs.Trips {
		if !trip.HasStartTime() {
			continue
		}
		months = append(months, int(trip.StartTime.Month()))
		days = append(days, int(domain.WeekdayOf(trip.StartTime)))
		hours = append(hours, trip.StartTime.Hour())
	}

	month, _, err := Mode(months)
	if err != nil {
		return nil, err
	}
	if month > int(domain.June) {
		return nil, fmt.Errorf("%w: month %s is not selectable", ErrNoValues, time.Month(month))
	}
	day, _, err := Mode(days)
	if err != nil {
		return nil, err
	}
	hour, _, err := Mode(hours)
	if err != nil {
		return nil, err
	}

	return []Line{
		{Label: "Most common month", Value: time.Month(month).String()},
		{Label: "Most common day of week", Value: domain.Weekday(day).Title()},
		{Label: "Most common start hour", Value: fmt.Sprintf("%02d:00:00", hour)},
	}, nil
}
