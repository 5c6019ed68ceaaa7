package jalali

import "time"

// FromTime returns the Persian date of t's calendar day in t's own location.
// It fails with ErrYearOutOfRange when that day lies outside the table.
func FromTime(t time.Time) (PersianDate, error) {
	y, m, d := t.Date()
	return toPersian(y, m, d)
}

// Time returns midnight of p in loc. A nil loc means UTC.
func (p PersianDate) Time(loc *time.Location) (time.Time, error) {
	g, err := ToGregorian(p)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, loc), nil
}

// Today returns the current Persian date in the local time zone.
func Today() (PersianDate, error) {
	return FromTime(time.Now())
}

// AddDays moves p by n days, forward or backward.
func AddDays(p PersianDate, n int) (PersianDate, error) {
	t, err := p.Time(time.UTC)
	if err != nil {
		return PersianDate{}, err
	}
	return FromTime(t.AddDate(0, 0, n))
}

// MonthGrid lays a Persian month out on Saturday-first weeks.
type MonthGrid struct {
	Year  int
	Month Month
	// Offset is the weekday of the first day, i.e. the number of empty
	// cells before it.
	Offset Weekday
	Days   int
}

// NewMonthGrid builds the grid for the given month.
func NewMonthGrid(year int, month Month) (MonthGrid, error) {
	if _, err := NewPersianDate(year, month, 1); err != nil {
		return MonthGrid{}, err
	}
	days, err := DaysInMonth(year, month)
	if err != nil {
		return MonthGrid{}, err
	}
	return MonthGrid{
		Year:   year,
		Month:  month,
		Offset: weekdayOfGregorian(toGregorian(year, month, 1)),
		Days:   days,
	}, nil
}

// Weeks returns the day numbers row by row; 0 marks a cell outside the month.
// Every row has seven cells.
func (g MonthGrid) Weeks() [][]int {
	cells := int(g.Offset) + g.Days
	rows := (cells + 6) / 7
	weeks := make([][]int, rows)
	for r := range weeks {
		weeks[r] = make([]int, 7)
		for c := range weeks[r] {
			if day := r*7 + c - int(g.Offset) + 1; day >= 1 && day <= g.Days {
				weeks[r][c] = day
			}
		}
	}
	return weeks
}

// Date returns the Persian date of the given day in the grid.
func (g MonthGrid) Date(day int) (PersianDate, error) {
	return NewPersianDate(g.Year, g.Month, day)
}
