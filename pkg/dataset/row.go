package dataset

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/bikeshare/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// TimestampLayouts are tried in order when parsing start and end times.
var TimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// tripRow mirrors the normalized CSV columns.
type tripRow struct {
	StartTime    time.Time `mapstructure:"starttime"`
	EndTime      time.Time `mapstructure:"endtime"`
	StartStation string    `mapstructure:"startstation"`
	EndStation   string    `mapstructure:"endstation"`
	TripDuration *float64  `mapstructure:"tripduration"`
	UserType     string    `mapstructure:"usertype"`
	Gender       string    `mapstructure:"gender"`
	BirthYear    *float64  `mapstructure:"birthyear"`
}

// decodeTrip converts one row, keyed by normalized column, into a Trip.
// Empty cells must already be removed from fields; they decode as unknown values.
func decodeTrip(fields map[string]any) (domain.Trip, error) {
	var row tripRow
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToTimestampHook(),
		WeaklyTypedInput: true,
		Result:           &row,
	})
	if err != nil {
		return domain.Trip{}, err
	}
	if err := dec.Decode(fields); err != nil {
		return domain.Trip{}, err
	}

	trip := domain.Trip{
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		StartStation: row.StartStation,
		EndStation:   row.EndStation,
		Duration:     row.TripDuration,
		UserType:     row.UserType,
		Gender:       row.Gender,
	}
	if row.BirthYear != nil {
		year := int(*row.BirthYear)
		trip.BirthYear = &year
	}
	return trip, nil
}

// stringToTimestampHook parses strings into time.Time using TimestampLayouts.
func stringToTimestampHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Time{}) {
			return data, nil
		}
		return parseTimestamp(data.(string))
	}
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range TimestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
