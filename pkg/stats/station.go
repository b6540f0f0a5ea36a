package stats

import (
	"fmt"

	"github.com/aretw0/bikeshare/pkg/domain"
)

// StationAggregator reports the most used start and end stations and the most frequent route.
type StationAggregator struct{}

func (StationAggregator) Name() string  { return "station" }
func (StationAggregator) Title() string { return "Calculating The Most Popular Stations and Trip..." }

func (StationAggregator) Compute(rs *domain.RecordSet) ([]Line, error) {
	var starts, ends, routes []string
	for _, trip := range rs.Trips {
		if trip.StartStation != "" {
			starts = append(starts, trip.StartStation)
		}
		if trip.EndStation != "" {
			ends = append(ends, trip.EndStation)
		}
		if trip.StartStation != "" && trip.EndStation != "" {
			routes = append(routes, trip.Route())
		}
	}

	start, _, err := Mode(starts)
	if err != nil {
		return nil, fmt.Errorf("start station: %w", err)
	}
	end, _, err := Mode(ends)
	if err != nil {
		return nil, fmt.Errorf("end station: %w", err)
	}
	route, _, err := Mode(routes)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	return []Line{
		{Label: "Most commonly used start station", Value: start},
		{Label: "Most commonly used end station", Value: end},
		{Label: "Most frequent combination of start station and end station trip", Value: route},
	}, nil
}
