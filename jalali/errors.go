package jalali

import "errors"

var (
	// ErrInvalidMonth is returned when a month is outside [1, 12]
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidDay is returned when a day is outside [1, days in month]
	ErrInvalidDay = errors.New("invalid day")
	// ErrYearOutOfRange is returned when a Persian year lies outside the break-point table
	ErrYearOutOfRange = errors.New("year out of range")
	// ErrInvalidFormat is returned by Parse for malformed date strings
	ErrInvalidFormat = errors.New("invalid date format")
)
