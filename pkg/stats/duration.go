package stats

import (
	"github.com/aretw0/bikeshare/pkg/domain"
)

// DurationAggregator reports the total and mean trip duration.
// Trips without a duration are left out of both.
type DurationAggregator struct{}

func (DurationAggregator) Name() string  { return "duration" }
func (DurationAggregator) Title() string { return "Calculating Trip Duration..." }

func (DurationAggregator) Compute(rs *domain.RecordSet) ([]Line, error) {
	var total float64
	n := 0
	for _, trip := range rs.Trips {
		if trip.Duration == nil {
			continue
		}
		total += *trip.Duration
		n++
	}
	if n == 0 {
		return nil, ErrNoValues
	}

	totalSec, err := truncateSeconds(total)
	if err != nil {
		return nil, err
	}
	meanSec, err := truncateSeconds(total / float64(n))
	if err != nil {
		return nil, err
	}

	return []Line{
		{Label: "Total travel time", Value: FormatDuration(totalSec)},
		{Label: "Mean travel time", Value: FormatDuration(meanSec)},
	}, nil
}
