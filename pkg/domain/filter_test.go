package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCity(t *testing.T) {
	tests := []struct {
		input   string
		want    City
		wantErr bool
	}{
		{"chicago", Chicago, false},
		{"  New York City ", NewYorkCity, false},
		{"WASHINGTON", Washington, false},
		{"boston", "", true},
		{"newyorkcity", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownCity))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("All")
	require.NoError(t, err)
	assert.Equal(t, MonthAll, got)

	got, err = ParseMonth("january")
	require.NoError(t, err)
	assert.Equal(t, January, got)
	assert.Equal(t, 1, int(got))

	got, err = ParseMonth("JUNE")
	require.NoError(t, err)
	assert.Equal(t, June, got)

	_, err = ParseMonth("july")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestParseWeekday(t *testing.T) {
	got, err := ParseWeekday("all")
	require.NoError(t, err)
	assert.Equal(t, DayAll, got)

	got, err = ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, 0, int(got))

	got, err = ParseWeekday("sunday")
	require.NoError(t, err)
	assert.Equal(t, 6, int(got))

	_, err = ParseWeekday("funday")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestWeekdayOf(t *testing.T) {
	// 2017-01-02 was a Monday.
	monday := time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
	assert.Equal(t, "Sunday", WeekdayOf(monday.AddDate(0, 0, 6)).Title())
	assert.Equal(t, "Monday", Monday.Title())
}

func TestOptions(t *testing.T) {
	assert.Equal(t, []string{"chicago", "new york city", "washington"}, CityOptions())
	assert.Len(t, MonthOptions(), 7)
	assert.Len(t, WeekdayOptions(), 8)
	assert.Equal(t, "all", WeekdayOptions()[0])
}

func TestDataSourceError(t *testing.T) {
	cause := errors.New("boom")
	err := &DataSourceError{City: Chicago, Path: "chicago.csv", Line: 3, Reason: "malformed row", Err: cause}

	assert.True(t, errors.Is(err, ErrDataSource))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, `dataset for "chicago" (chicago.csv) line 3: malformed row: boom`, err.Error())
}

func TestRecordSet_Derive(t *testing.T) {
	rs := NewRecordSet(Chicago, []string{ColumnGender}, []Trip{{StartStation: "A"}, {StartStation: "B"}})
	sub := rs.Derive(rs.Trips[:1])

	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, 1, sub.Len())
	assert.True(t, sub.HasColumn(ColumnGender))
	assert.False(t, sub.HasColumn(ColumnBirthYear))

	var empty *RecordSet
	assert.Equal(t, 0, empty.Len())
}

func TestTrip_Route(t *testing.T) {
	trip := Trip{StartStation: "Canal St", EndStation: "Clark St"}
	assert.Equal(t, "Canal St -> Clark St", trip.Route())
}
