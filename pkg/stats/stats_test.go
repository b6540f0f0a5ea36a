package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/bikeshare/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demographics = []string{domain.ColumnGender, domain.ColumnBirthYear}

func year(y int) *int { return &y }

func secs(d float64) *float64 { return &d }

func lineMap(t *testing.T, res Result) map[string]string {
	t.Helper()
	require.NoError(t, res.Err)
	out := make(map[string]string, len(res.Lines))
	for _, l := range res.Lines {
		out[l.Label] = l.Value
	}
	return out
}

func TestEmptySet_AllFallback(t *testing.T) {
	empty := domain.NewRecordSet(domain.Chicago, demographics, nil)

	results := RunAll(Default(), empty)
	require.Len(t, results, 4)
	for _, res := range results {
		assert.True(t, res.Fallback(), res.Aggregator)
		assert.ErrorIs(t, res.Err, ErrNoRecords)
		assert.Empty(t, res.Lines)
		assert.Equal(t, "Nothing found!", res.Body())
	}
}

func TestTimeAggregator(t *testing.T) {
	rs := domain.NewRecordSet(domain.Chicago, nil, []domain.Trip{
		{StartTime: time.Date(2017, time.January, 2, 8, 15, 0, 0, time.UTC)},  // Monday
		{StartTime: time.Date(2017, time.January, 9, 17, 5, 0, 0, time.UTC)},  // Monday
		{StartTime: time.Date(2017, time.March, 10, 17, 45, 0, 0, time.UTC)}, // Friday
	})

	got := lineMap(t, Run(TimeAggregator{}, rs))
	assert.Equal(t, "January", got["Most common month"])
	assert.Equal(t, "Monday", got["Most common day of week"])
	assert.Equal(t, "17:00:00", got["Most common start hour"])
}

func TestTimeAggregator_SkipsUnknownStartTimes(t *testing.T) {
	rs := domain.NewRecordSet(domain.Chicago, nil, []domain.Trip{
		{},
		{StartTime: time.Date(2017, time.February, 7, 6, 0, 0, 0, time.UTC)}, // Tuesday
		{},
	})

	got := lineMap(t, Run(TimeAggregator{}, rs))
	assert.Equal(t, "February", got["Most common month"])
	assert.Equal(t, "Tuesday", got["Most common day of week"])
	assert.Equal(t, "06:00:00", got["Most common start hour"])

	res := Run(TimeAggregator{}, domain.NewRecordSet(domain.Chicago, nil, []domain.Trip{{}}))
	assert.ErrorIs(t, res.Err, ErrNoValues)
}

func TestTimeAggregator_MonthPastJuneFallsBack(t *testing.T) {
	rs := domain.NewRecordSet(domain.Chicago, nil, []domain.Trip{
		{StartTime: time.Date(2017, time.July, 3, 8, 0, 0, 0, time.UTC)},
		{StartTime: time.Date(2017, time.July, 4, 9, 0, 0, 0, time.UTC)},
		{StartTime: time.Date(2017, time.June, 5, 9, 0, 0, 0, time.UTC)},
	})

	res := Run(TimeAggregator{}, rs)
	assert.ErrorIs(t, res.Err, ErrNoValues)
	assert.Empty(t, res.Lines)
	assert.Equal(t, FallbackMessage, res.Body())
}

func TestTimeAggregator_HourPadding(t *testing.T) {
	rs := domain.NewRecordSet(domain.Chicago, nil, []domain.Trip{
		{StartTime: time.Date(2017, time.June, 25, 8, 0, 0, 0, time.UTC)},
	})
	got := lineMap(t, Run(TimeAggregator{}, rs))
	assert.Equal(t, "08:00:00", got["Most common start hour"])
	assert.Equal(t, "June", got["Most common month"])
	assert.Equal(t, "Sunday", got["Most common day of week"])
}

func TestStationAggregator(t *testing.T) {
	rs := domain.NewRecordSet(domain.NewYorkCity, nil, []domain.Trip{
		{StartStation: "A", EndStation: "B"},
		{StartStation: "A", EndStation: "C"},
		{StartStation: "B", EndStation: "C"},
		{StartStation: "A", EndStation: "C"},
	})

	got := lineMap(t, Run(StationAggregator{}, rs))
	assert.Equal(t, "A", got["Most commonly used start station"])
	assert.Equal(t, "C", got["Most commonly used end station"])
	assert.Equal(t, "A -> C", got["Most frequent combination of start station and end station trip"])
}

func TestStationAggregator_NoNames(t *testing.T) {
	rs := domain.NewRecordSet(domain.NewYorkCity, nil, []domain.Trip{{Duration: secs(1)}})
	res := Run(StationAggregator{}, rs)
	assert.ErrorIs(t, res.Err, ErrNoValues)
	assert.Empty(t, res.Lines)
}

func TestDurationAggregator(t *testing.T) {
	rs := domain.NewRecordSet(domain.Washington, nil, []domain.Trip{
		{Duration: secs(10)}, {Duration: secs(20)}, {Duration: secs(30)},
	})

	got := lineMap(t, Run(DurationAggregator{}, rs))
	assert.Equal(t, "0:01:00", got["Total travel time"])
	assert.Equal(t, "0:00:20", got["Mean travel time"])
}

func TestDurationAggregator_SkipsUnknownDurations(t *testing.T) {
	rs := domain.NewRecordSet(domain.Chicago, nil, []domain.Trip{
		{Duration: secs(10)}, {}, {Duration: secs(30)},
	})

	got := lineMap(t, Run(DurationAggregator{}, rs))
	assert.Equal(t, "0:00:40", got["Total travel time"])
	assert.Equal(t, "0:00:20", got["Mean travel time"])

	res := Run(DurationAggregator{}, domain.NewRecordSet(domain.Chicago, nil, []domain.Trip{{}, {}}))
	assert.ErrorIs(t, res.Err, ErrNoValues)
	assert.Equal(t, FallbackMessage, res.Body())
}

func TestDurationAggregator_Truncates(t *testing.T) {
	rs := domain.NewRecordSet(domain.Washington, nil, []domain.Trip{
		{Duration: secs(86400.9)}, {Duration: secs(3661.5)},
	})

	got := lineMap(t, Run(DurationAggregator{}, rs))
	assert.Equal(t, "1 day, 1:01:02", got["Total travel time"])
	assert.Equal(t, "12:30:31", got["Mean travel time"])
}

func TestUserAggregator(t *testing.T) {
	rs := domain.NewRecordSet(domain.Chicago, demographics, []domain.Trip{
		{UserType: "Subscriber", Gender: "Male", BirthYear: year(1990)},
		{UserType: "Customer", Gender: "Female", BirthYear: year(1985)},
		{UserType: "Subscriber", BirthYear: year(1990)},
		{UserType: "Dependent", Gender: "Male"},
	})

	got := lineMap(t, Run(UserAggregator{}, rs))
	assert.Equal(t, "2", got["Count user type = Subscriber"])
	assert.Equal(t, "1", got["Count user type = Customer"])
	assert.Equal(t, "2", got["Count user gender = Male"])
	assert.Equal(t, "1", got["Count user gender = Female"])
	assert.Equal(t, "1985", got["Earliest year of birth"])
	assert.Equal(t, "1990", got["Most recent year of birth"])
	assert.Equal(t, "1990", got["Most common year of birth"])
}

func TestUserAggregator_Fallbacks(t *testing.T) {
	trips := []domain.Trip{{UserType: "Subscriber"}, {UserType: "Customer"}}

	t.Run("missing demographic columns", func(t *testing.T) {
		res := Run(UserAggregator{}, domain.NewRecordSet(domain.Washington, nil, trips))
		assert.True(t, errors.Is(res.Err, ErrMissingColumn))
		assert.Equal(t, FallbackMessage, res.Body())
	})

	t.Run("no birth years", func(t *testing.T) {
		res := Run(UserAggregator{}, domain.NewRecordSet(domain.Chicago, demographics, trips))
		assert.True(t, errors.Is(res.Err, ErrNoValues))
		assert.Empty(t, res.Lines)
	})
}

func TestAggregatorsAreOrderInsensitive(t *testing.T) {
	rs := domain.NewRecordSet(domain.Chicago, demographics, []domain.Trip{
		{StartTime: time.Date(2017, time.May, 1, 9, 0, 0, 0, time.UTC), StartStation: "A", EndStation: "B", Duration: secs(60), UserType: "Subscriber", Gender: "Male", BirthYear: year(1980)},
		{StartTime: time.Date(2017, time.May, 2, 9, 0, 0, 0, time.UTC), StartStation: "B", EndStation: "A", Duration: secs(120), UserType: "Customer", Gender: "Female", BirthYear: year(1999)},
	})

	forward := RunAll(Default(), rs)
	aggs := Default()
	reversed := []Aggregator{aggs[3], aggs[2], aggs[1], aggs[0]}
	backward := RunAll(reversed, rs)

	for i := range forward {
		assert.Equal(t, forward[i], backward[len(backward)-1-i])
	}
	assert.Equal(t, "A", rs.Trips[0].StartStation)
}

func TestResultRendering(t *testing.T) {
	ok := Result{
		Title: "Calculating Trip Duration...",
		Lines: []Line{{Label: "Total travel time", Value: "0:01:00"}, {Label: "Mean travel time", Value: "0:00:20"}},
	}
	assert.Equal(t, "\nCalculating Trip Duration...\n\nTotal travel time: 0:01:00\nMean travel time: 0:00:20\n", ok.Text())
	assert.Contains(t, ok.Markdown(), "## Calculating Trip Duration\n")
	assert.Contains(t, ok.Markdown(), "- **Mean travel time**: 0:00:20")

	failed := Result{Title: "Calculating User Stats...", Err: ErrNoRecords}
	assert.Equal(t, "\nCalculating User Stats...\n\nNothing found!\n", failed.Text())
	assert.Contains(t, failed.Markdown(), "_Nothing found!_")
}
