package jalali

import (
	"strconv"
	"time"
)

// Weekday is a day of the Persian week, which starts on Saturday.
type Weekday int

const (
	Shanbeh Weekday = iota
	Yekshanbeh
	Doshanbeh
	Seshanbeh
	Chaharshanbeh
	Panjshanbeh
	Jomeh
)

// String returns the Persian name of the weekday.
func (d Weekday) String() string {
	if name, ok := WeekdayName(d); ok {
		return name
	}
	return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
}

// FromGoWeekday rotates a Sunday-first weekday onto the Saturday-first week.
func FromGoWeekday(d time.Weekday) Weekday {
	return Weekday((int(d) + 1) % 7)
}

// WeekdayOf returns the day of the week on which p falls.
func WeekdayOf(p PersianDate) (Weekday, error) {
	g, err := ToGregorian(p)
	if err != nil {
		return 0, err
	}
	return weekdayOfGregorian(g), nil
}

func weekdayOfGregorian(g GregorianDate) Weekday {
	return FromGoWeekday(time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, time.UTC).Weekday())
}
