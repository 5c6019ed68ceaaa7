package jalali

import (
	"fmt"
	"time"
)

// DaysInMonth returns the length of a Persian month. The oracle is only
// consulted for Esfand, so the year span is only checked there.
func DaysInMonth(year int, month Month) (int, error) {
	switch {
	case month < Farvardin || month > Esfand:
		return 0, fmt.Errorf("%w: %d not in [1, 12]", ErrInvalidMonth, int(month))
	case month <= Shahrivar:
		return 31, nil
	case month <= Bahman:
		return 30, nil
	}

	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, err
	}
	if leap {
		return 30, nil
	}
	return 29, nil
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) (int, error) {
	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, err
	}
	if leap {
		return 366, nil
	}
	return 365, nil
}

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsGregorianLeapYear applies the proleptic Gregorian rule.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInGregorianMonth returns the length of a Gregorian month.
func DaysInGregorianMonth(year int, month time.Month) (int, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: %d not in [1, 12]", ErrInvalidMonth, int(month))
	}
	if month == time.February && IsGregorianLeapYear(year) {
		return 29, nil
	}
	return gregorianMonthDays[month-1], nil
}
