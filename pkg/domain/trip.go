package domain

import "time"

// Trip is a single ride read from a city dataset.
type Trip struct {
	// StartTime is the zero time when the source has no value for the row.
	StartTime    time.Time
	EndTime      time.Time
	StartStation string
	EndStation   string

	// Duration is the trip length in seconds, nil when the source has no value.
	Duration *float64

	UserType string

	// Gender is empty when the source has no value for the row.
	Gender string

	// BirthYear is nil when the source has no value for the row.
	BirthYear *int
}

// HasStartTime reports whether the start time of the trip is known.
func (t Trip) HasStartTime() bool {
	return !t.StartTime.IsZero()
}

// Route returns the "start -> end" station pair of the trip.
func (t Trip) Route() string {
	return t.StartStation + RouteSeparator + t.EndStation
}

// RecordSet is the ordered collection of trips for one city.
// Trips keep the order of the source file.
type RecordSet struct {
	City City

	// Columns holds the normalized column identifiers present in the source.
	Columns map[string]bool

	Trips []Trip
}

// NewRecordSet creates a record set for the given city and columns.
func NewRecordSet(city City, columns []string, trips []Trip) *RecordSet {
	cols := make(map[string]bool, len(columns))
	for _, c := range columns {
		cols[c] = true
	}
	return &RecordSet{
		City:    city,
		Columns: cols,
		Trips:   trips,
	}
}

// Len returns the number of trips in the set.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Trips)
}

// HasColumn reports whether the source of the set carried the given column.
func (rs *RecordSet) HasColumn(name string) bool {
	if rs == nil {
		return false
	}
	return rs.Columns[name]
}

// Derive returns a new set of the same city and columns holding trips.
// The receiver is not modified.
func (rs *RecordSet) Derive(trips []Trip) *RecordSet {
	return &RecordSet{
		City:    rs.City,
		Columns: rs.Columns,
		Trips:   trips,
	}
}
