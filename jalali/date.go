package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a Persian calendar month, Farvardin (1) through Esfand (12).
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

// String returns the Persian name of the month.
func (m Month) String() string {
	if name, ok := MonthName(m); ok {
		return name
	}
	return "%!Month(" + strconv.Itoa(int(m)) + ")"
}

// PersianDate is a day in the Solar Hijri calendar.
type PersianDate struct {
	Year  int
	Month Month
	Day   int
}

// GregorianDate is a day in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewPersianDate returns the date or the reason it does not exist.
func NewPersianDate(year int, month Month, day int) (PersianDate, error) {
	p := PersianDate{Year: year, Month: month, Day: day}
	if err := p.Validate(); err != nil {
		return PersianDate{}, err
	}
	return p, nil
}

// Validate checks the year span, then the month, then the day.
func (p PersianDate) Validate() error {
	if err := checkYear(p.Year); err != nil {
		return err
	}
	days, err := DaysInMonth(p.Year, p.Month)
	if err != nil {
		return err
	}
	if p.Day < 1 || p.Day > days {
		return fmt.Errorf("%w: %d not in [1, %d] for %d/%02d", ErrInvalidDay, p.Day, days, p.Year, int(p.Month))
	}
	return nil
}

// String formats the date as YYYY/MM/DD with ASCII digits.
func (p PersianDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", p.Year, int(p.Month), p.Day)
}

// Before reports whether p comes earlier than q.
func (p PersianDate) Before(q PersianDate) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	if p.Month != q.Month {
		return p.Month < q.Month
	}
	return p.Day < q.Day
}

// NewGregorianDate returns the date or the reason it does not exist.
func NewGregorianDate(year int, month time.Month, day int) (GregorianDate, error) {
	g := GregorianDate{Year: year, Month: month, Day: day}
	if err := g.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return g, nil
}

// Validate checks the month, then the day. Any year is accepted.
func (g GregorianDate) Validate() error {
	days, err := DaysInGregorianMonth(g.Year, g.Month)
	if err != nil {
		return err
	}
	if g.Day < 1 || g.Day > days {
		return fmt.Errorf("%w: %d not in [1, %d] for %d-%02d", ErrInvalidDay, g.Day, days, g.Year, int(g.Month))
	}
	return nil
}

// String formats the date as YYYY-MM-DD.
func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, int(g.Month), g.Day)
}

// Parse reads a Persian date written as year, month and day separated by
// '/' or '-'. Persian digits are accepted. The result is validated.
func Parse(s string) (PersianDate, error) {
	year, month, day, err := splitDate(FromPersianDigits(strings.TrimSpace(s)))
	if err != nil {
		return PersianDate{}, err
	}
	return NewPersianDate(year, Month(month), day)
}

// ParseGregorian reads a Gregorian date written as YYYY-MM-DD or YYYY/MM/DD.
func ParseGregorian(s string) (GregorianDate, error) {
	year, month, day, err := splitDate(strings.TrimSpace(s))
	if err != nil {
		return GregorianDate{}, err
	}
	return NewGregorianDate(year, time.Month(month), day)
}

func splitDate(s string) (year, month, day int, err error) {
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}

	sep := "/"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var fields [3]int
	for i, part := range parts {
		v, convErr := strconv.Atoi(part)
		if convErr != nil || v < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		fields[i] = v
	}
	return sign * fields[0], fields[1], fields[2], nil
}
