package domain

// Normalized column identifiers (lowercase, spaces removed).
const (
	ColumnStartTime    = "starttime"
	ColumnEndTime      = "endtime"
	ColumnStartStation = "startstation"
	ColumnEndStation   = "endstation"
	ColumnTripDuration = "tripduration"
	ColumnUserType     = "usertype"
	ColumnGender       = "gender"
	ColumnBirthYear    = "birthyear"
)

// RequiredColumns must be present in every city dataset.
var RequiredColumns = []string{
	ColumnStartTime,
	ColumnEndTime,
	ColumnStartStation,
	ColumnEndStation,
	ColumnTripDuration,
	ColumnUserType,
}

// Categorical values counted by the user statistics.
const (
	UserTypeSubscriber = "Subscriber"
	UserTypeCustomer   = "Customer"
	GenderMale         = "Male"
	GenderFemale       = "Female"
)

// RouteSeparator joins start and end station names into a trip route.
const RouteSeparator = " -> "
