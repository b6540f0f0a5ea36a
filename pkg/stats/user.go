package stats

import (
	"fmt"
	"strconv"

	"github.com/aretw0/bikeshare/pkg/domain"
)

// UserAggregator reports user type and gender counts and birth year extremes.
// Sources without gender or birth year columns produce the fallback.
type UserAggregator struct{}

func (UserAggregator) Name() string  { return "user" }
func (UserAggregator) Title() string { return "Calculating User Stats..." }

func (UserAggregator) Compute(rs *domain.RecordSet) ([]Line, error) {
	for _, col := range []string{domain.ColumnGender, domain.ColumnBirthYear} {
		if !rs.HasColumn(col) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var subscribers, customers, males, females int
	years := make([]int, 0, rs.Len())
	for _, trip := range rs.Trips {
		switch trip.UserType {
		case domain.UserTypeSubscriber:
			subscribers++
		case domain.UserTypeCustomer:
			customers++
		}
		switch trip.Gender {
		case domain.GenderMale:
			males++
		case domain.GenderFemale:
			females++
		}
		if trip.BirthYear != nil {
			years = append(years, *trip.BirthYear)
		}
	}

	common, _, err := Mode(years)
	if err != nil {
		return nil, fmt.Errorf("birth year: %w", err)
	}
	earliest, latest := years[0], years[0]
	for _, y := range years[1:] {
		earliest = min(earliest, y)
		latest = max(latest, y)
	}

	return []Line{
		{Label: "Count user type = Subscriber", Value: strconv.Itoa(subscribers)},
		{Label: "Count user type = Customer", Value: strconv.Itoa(customers)},
		{Label: "Count user gender = Male", Value: strconv.Itoa(males)},
		{Label: "Count user gender = Female", Value: strconv.Itoa(females)},
		{Label: "Earliest year of birth", Value: strconv.Itoa(earliest)},
		{Label: "Most recent year of birth", Value: strconv.Itoa(latest)},
		{Label: "Most common year of birth", Value: strconv.Itoa(common)},
	}, nil
}
