package stats

import (
	"github.com/aretw0/bikeshare/pkg/domain"
)

// Aggregator computes one group of statistics over a record set.
type Aggregator interface {
	// Name is a short identifier used in logs and metrics.
	Name() string
	// Title is the heading printed before the statistics.
	Title() string
	// Compute returns the statistic lines or the reason they cannot be computed.
	// It is only called with a non-empty set.
	Compute(rs *domain.RecordSet) ([]Line, error)
}

// Run executes an aggregator and folds any failure into the fallback Result.
// No partial lines are kept when Compute fails.
func Run(a Aggregator, rs *domain.RecordSet) Result {
	res := Result{Aggregator: a.Name(), Title: a.Title()}
	if rs.Len() == 0 {
		res.Err = ErrNoRecords
		return res
	}
	lines, err := a.Compute(rs)
	if err != nil {
		res.Err = err
		return res
	}
	res.Lines = lines
	return res
}

// RunAll executes each aggregator in order.
func RunAll(aggs []Aggregator, rs *domain.RecordSet) []Result {
	results := make([]Result, 0, len(aggs))
	for _, a := range aggs {
		results = append(results, Run(a, rs))
	}
	return results
}

// Default returns the four aggregators in report order.
func Default() []Aggregator {
	return []Aggregator{
		TimeAggregator{},
		StationAggregator{},
		DurationAggregator{},
		UserAggregator{},
	}
}
