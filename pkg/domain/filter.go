package domain

import (
	"fmt"
	"strings"
	"time"
)

// City identifies one of the supported bike-share datasets.
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities lists the supported cities in prompt order.
var Cities = []City{Chicago, NewYorkCity, Washington}

// AllOption is the selector value that disables a filter.
const AllOption = "all"

// Month is a calendar month selector. MonthAll disables month filtering.
type Month int

const (
	MonthAll Month = iota
	January
	February
	March
	April
	May
	June
)

var monthNames = []string{AllOption, "january", "february", "march", "april", "may", "june"}

// Weekday is a day-of-week selector indexed Monday=0 .. Sunday=6.
// DayAll disables day filtering.
type Weekday int

const (
	DayAll Weekday = iota - 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// FilterSpec selects the city to load and the optional month and day restrictions.
type FilterSpec struct {
	City  City
	Month Month
	Day   Weekday
}

func (f FilterSpec) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", f.City, f.Month, f.Day)
}

// ParseCity matches input case-insensitively against the supported cities.
func ParseCity(input string) (City, error) {
	v := normalizeOption(input)
	for _, c := range Cities {
		if string(c) == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, input)
}

// ParseMonth matches input case-insensitively against "all" and january..june.
func ParseMonth(input string) (Month, error) {
	v := normalizeOption(input)
	for i, name := range monthNames {
		if name == v {
			return Month(i), nil
		}
	}
	return MonthAll, fmt.Errorf("%w: month %q", ErrInvalidOption, input)
}

// ParseWeekday matches input case-insensitively against "all" and monday..sunday.
func ParseWeekday(input string) (Weekday, error) {
	v := normalizeOption(input)
	if v == AllOption {
		return DayAll, nil
	}
	for i, name := range dayNames {
		if name == v {
			return Weekday(i), nil
		}
	}
	return DayAll, fmt.Errorf("%w: day %q", ErrInvalidOption, input)
}

// MonthOptions returns the accepted month selector values.
func MonthOptions() []string {
	return append([]string(nil), monthNames...)
}

// WeekdayOptions returns the accepted day selector values.
func WeekdayOptions() []string {
	return append([]string{AllOption}, dayNames...)
}

// CityOptions returns the accepted city selector values.
func CityOptions() []string {
	opts := make([]string, len(Cities))
	for i, c := range Cities {
		opts[i] = string(c)
	}
	return opts
}

func (m Month) String() string {
	if m < MonthAll || int(m) >= len(monthNames) {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}

func (d Weekday) String() string {
	if d == DayAll {
		return AllOption
	}
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return dayNames[d]
}

// WeekdayOf returns the day-of-week index of t, Monday=0 .. Sunday=6.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Title returns the capitalized weekday name ("Monday").
func (d Weekday) Title() string {
	if d < Monday || d > Sunday {
		return d.String()
	}
	return (time.Weekday((int(d) + 1) % 7)).String()
}

func normalizeOption(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
