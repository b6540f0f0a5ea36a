package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownCity is returned when a city is not one of the supported datasets.
var ErrUnknownCity = errors.New("unknown city")

// ErrInvalidOption is returned when a month or day selector is not recognized.
var ErrInvalidOption = errors.New("invalid option")

// ErrDataSource matches every DataSourceError via errors.Is.
var ErrDataSource = errors.New("data source error")

// DataSourceError reports a missing or malformed city dataset.
type DataSourceError struct {
	City   City
	Path   string
	Line   int // 0 when the failure is not tied to a row
	Reason string
	Err    error
}

func (e *DataSourceError) Error() string {
	msg := fmt.Sprintf("dataset for %q (%s)", e.City, e.Path)
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataSourceError) Unwrap() error { return e.Err }

func (e *DataSourceError) Is(target error) bool { return target == ErrDataSource }
